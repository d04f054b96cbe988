package models

import "encoding/json"

// Query is a student question addressed to placement staff
type Query struct {
	StudentName string `json:"student_name"`
	StudentID   string `json:"student_id"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	Date        string `json:"date"`
}

// UnmarshalJSON accepts the legacy "timestamp" key some older records
// carry instead of "date". Only "date" is written.
func (q *Query) UnmarshalJSON(data []byte) error {
	type queryAlias Query
	aux := struct {
		*queryAlias
		LegacyTimestamp string `json:"timestamp"`
	}{queryAlias: (*queryAlias)(q)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if q.Date == "" {
		q.Date = aux.LegacyTimestamp
	}
	return nil
}

// Response is a staff answer. It correlates to a query by carrying the
// asking student's identifier and a copy of the query text; there is no
// foreign key, so one query can accumulate several answers.
type Response struct {
	StudentID     string `json:"student_id"`
	StudentName   string `json:"student_name"`
	OriginalQuery string `json:"original_query"`
	Response      string `json:"response"`
	ResponseDate  string `json:"response_date"`
}
