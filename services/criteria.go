package services

import (
	"encoding/json"
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"

	"train-xchange/models"
)

// Field names accepted by ParseCriteria and the JSON decoders
const (
	ParamFrom       = "from"
	ParamTo         = "to"
	ParamDate       = "date"
	ParamPassengers = "passengers"
	ParamMaxPrice   = "max_price"
	ParamSortBy     = "sort_by"
)

var ErrNotJSONObject = errors.New("criteria body must be a JSON object")

// ParseCriteria builds criteria from form values. Missing or malformed
// fields mean "no constraint"; passengers falls back to 1.
func ParseCriteria(values url.Values) models.SearchCriteria {
	return models.SearchCriteria{
		From:       cleanText(values.Get(ParamFrom)),
		To:         cleanText(values.Get(ParamTo)),
		Date:       cleanText(values.Get(ParamDate)),
		Passengers: parsePassengers(values.Get(ParamPassengers)),
		MaxPrice:   parseMaxPrice(values.Get(ParamMaxPrice)),
		SortBy:     models.SortKey(cleanText(values.Get(ParamSortBy))),
	}
}

// DecodeCriteria reads criteria from a JSON object with the same rules as
// ParseCriteria. Only a body that is not a JSON object is an error.
func DecodeCriteria(data []byte) (models.SearchCriteria, error) {
	fields, err := decodeObject(data)
	if err != nil {
		return models.SearchCriteria{}, err
	}
	return criteriaFromFields(fields), nil
}

// DecodeCriteriaChange reads {"current": ..., "update": ...}. A nested value
// that is not an object is treated as empty.
func DecodeCriteriaChange(data []byte) (models.CriteriaChange, error) {
	fields, err := decodeObject(data)
	if err != nil {
		return models.CriteriaChange{}, err
	}

	current, _ := decodeObject(fields["current"])
	update, _ := decodeObject(fields["update"])

	return models.CriteriaChange{
		Current: criteriaFromFields(current),
		Update:  updateFromFields(update),
	}, nil
}

func criteriaFromFields(fields map[string]json.RawMessage) models.SearchCriteria {
	return models.SearchCriteria{
		From:       cleanText(jsonString(fields[ParamFrom])),
		To:         cleanText(jsonString(fields[ParamTo])),
		Date:       cleanText(jsonString(fields[ParamDate])),
		Passengers: parsePassengers(jsonText(fields[ParamPassengers])),
		MaxPrice:   parseMaxPrice(jsonText(fields[ParamMaxPrice])),
		SortBy:     models.SortKey(cleanText(jsonString(fields[ParamSortBy]))),
	}
}

// updateFromFields sets every field present in the object. A malformed
// value becomes "no constraint" rather than leaving the field unchanged.
func updateFromFields(fields map[string]json.RawMessage) models.CriteriaUpdate {
	var u models.CriteriaUpdate
	if raw, ok := present(fields, ParamFrom); ok {
		v := cleanText(jsonString(raw))
		u.From = &v
	}
	if raw, ok := present(fields, ParamTo); ok {
		v := cleanText(jsonString(raw))
		u.To = &v
	}
	if raw, ok := present(fields, ParamDate); ok {
		v := cleanText(jsonString(raw))
		u.Date = &v
	}
	if raw, ok := present(fields, ParamPassengers); ok {
		v := parsePassengers(jsonText(raw))
		u.Passengers = &v
	}
	if raw, ok := present(fields, ParamMaxPrice); ok {
		v := parseMaxPrice(jsonText(raw))
		u.MaxPrice = &v
	}
	if raw, ok := present(fields, ParamSortBy); ok {
		v := models.SortKey(cleanText(jsonString(raw)))
		u.SortBy = &v
	}
	return u
}

// present reports whether key holds a non-null value
func present(fields map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return nil, false
	}
	return raw, true
}

func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, ErrNotJSONObject
	}
	return fields, nil
}

// jsonString returns the contents of a JSON string and "" for any other value
func jsonString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// jsonText returns a number's literal text or a string's contents.
// Any other value yields "".
func jsonText(raw json.RawMessage) string {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return jsonString(raw)
}

func cleanText(s string) string {
	return strings.TrimSpace(s)
}

func parsePassengers(s string) int {
	if p, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && p > 0 {
		return p
	}
	return 1
}

func parseMaxPrice(s string) float64 {
	m, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || m <= 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return 0
	}
	return m
}
