package service

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/guregu/null/v6"

	"github.com/guttosm/quotelens/internal/domain/models"
	"github.com/guttosm/quotelens/internal/provider"
)

// profileFromInfo relabels provider metadata into a Profile. Unknown or
// mistyped fields are left null. VIP is the name of the first listed officer.
func profileFromInfo(info provider.Info) models.Profile {
	if len(info) == 0 {
		return models.Profile{}
	}
	return models.Profile{
		LongName:  str(info, "longName"),
		ShortName: str(info, "shortName"),
		Website:   str(info, "website"),
		Phone:     str(info, "phone"),
		Address:   str(info, "address1"),
		City:      str(info, "city"),
		State:     str(info, "state"),
		Zip:       str(info, "zip"),
		Country:   str(info, "country"),
		Industry:  str(info, "industry"),
		Sector:    str(info, "sector"),
		Exchange:  str(info, "exchange"),
		Currency:  str(info, "currency"),
		Employees: integer(info, "fullTimeEmployees"),
		Summary:   str(info, "longBusinessSummary"),
		VIP:       firstOfficer(info),
	}
}

func str(info map[string]any, key string) null.String {
	s, ok := info[key].(string)
	if !ok {
		return null.String{}
	}
	return null.StringFrom(s)
}

func integer(info map[string]any, key string) null.Int {
	switch v := info[key].(type) {
	case int:
		return null.IntFrom(int64(v))
	case int64:
		return null.IntFrom(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return null.Int{}
		}
		return null.IntFrom(int64(v))
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return null.IntFrom(n)
		}
		if f, err := v.Float64(); err == nil {
			return null.IntFrom(int64(f))
		}
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return null.IntFrom(n)
		}
	}
	return null.Int{}
}

func firstOfficer(info map[string]any) null.String {
	var first any
	switch officers := info["companyOfficers"].(type) {
	case []any:
		if len(officers) > 0 {
			first = officers[0]
		}
	case []map[string]any:
		if len(officers) > 0 {
			first = officers[0]
		}
	}
	m, ok := first.(map[string]any)
	if !ok {
		return null.String{}
	}
	return str(m, "name")
}
