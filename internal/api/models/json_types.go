package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList is a jsonb-backed list of strings (skills, requirements, ...).
type StringList []string

func (sl StringList) Value() (driver.Value, error) {
	if sl == nil {
		return "[]", nil
	}
	return json.Marshal(sl)
}

func (sl *StringList) Scan(value interface{}) error {
	return scanJSON(value, sl)
}

// UintList is a jsonb-backed list of IDs (saved jobs).
type UintList []uint

func (ul UintList) Value() (driver.Value, error) {
	if ul == nil {
		return "[]", nil
	}
	return json.Marshal(ul)
}

func (ul *UintList) Scan(value interface{}) error {
	return scanJSON(value, ul)
}

// Contains reports whether id is present in the list.
func (ul UintList) Contains(id uint) bool {
	for _, v := range ul {
		if v == id {
			return true
		}
	}
	return false
}

// SalaryRange is the salary bracket attached to jobs and to the expected
// salary of applicants. Period is "monthly" or "yearly".
type SalaryRange struct {
	Min    int    `json:"min"`
	Max    int    `json:"max"`
	Period string `json:"period,omitempty"`
}

func (sr SalaryRange) Value() (driver.Value, error) {
	return json.Marshal(sr)
}

func (sr *SalaryRange) Scan(value interface{}) error {
	return scanJSON(value, sr)
}

// JobLocation describes where a job is based.
type JobLocation struct {
	City     string `json:"city"`
	Area     string `json:"area,omitempty"`
	Address  string `json:"address,omitempty"`
	Pincode  string `json:"pincode,omitempty"`
	Landmark string `json:"landmark,omitempty"`
}

func (jl JobLocation) Value() (driver.Value, error) {
	return json.Marshal(jl)
}

func (jl *JobLocation) Scan(value interface{}) error {
	return scanJSON(value, jl)
}

func scanJSON(value interface{}, dest any) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("unsupported type for jsonb scan")
	}
}
