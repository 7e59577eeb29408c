// Package query translates HTTP query strings and configuration into filter requests.
package query

import (
	"net/url"
	"strings"

	"cardiodash/internal/config"
	"cardiodash/internal/pipeline"
)

// Parameter names accepted by the dashboard and API
const (
	ParamAge     = "age"
	ParamSex     = "sex"
	ParamSmoking = "smoking"
)

// FromConfig converts the configured initial selection
func FromConfig(filters config.FilterConfig) pipeline.SelectionRequest {
	fromList := func(values []string) pipeline.FieldFilter {
		if values == nil {
			return pipeline.FieldFilter{}
		}
		return pipeline.Only(values...)
	}
	return pipeline.SelectionRequest{
		AgeCategory:    fromList(filters.AgeCategory),
		Sex:            fromList(filters.Sex),
		SmokingHistory: fromList(filters.SmokingHistory),
	}
}

// ParseSelection reads age, sex and smoking parameters. Each may repeat or carry a
// comma separated list. An absent parameter leaves the field unset; a parameter that
// is present with no values ("sex=") selects nothing.
func ParseSelection(values url.Values) pipeline.SelectionRequest {
	return pipeline.SelectionRequest{
		AgeCategory:    parseField(values, ParamAge),
		Sex:            parseField(values, ParamSex),
		SmokingHistory: parseField(values, ParamSmoking),
	}
}

func parseField(values url.Values, key string) pipeline.FieldFilter {
	raw, ok := values[key]
	if !ok {
		return pipeline.FieldFilter{}
	}
	filter := pipeline.FieldFilter{Set: true, Values: []string{}}
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				filter.Values = append(filter.Values, part)
			}
		}
	}
	return filter
}

// Encode renders a request back into query parameters, the inverse of ParseSelection
func Encode(req pipeline.SelectionRequest) url.Values {
	values := url.Values{}
	encode := func(key string, f pipeline.FieldFilter) {
		if !f.Set {
			return
		}
		if len(f.Values) == 0 {
			values.Set(key, "")
			return
		}
		values[key] = append([]string(nil), f.Values...)
	}
	encode(ParamAge, req.AgeCategory)
	encode(ParamSex, req.Sex)
	encode(ParamSmoking, req.SmokingHistory)
	return values
}
