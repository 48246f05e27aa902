package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// JSONBMap is a custom type for PostgreSQL JSONB columns that maps to map[string]interface{}
type JSONBMap map[string]interface{}

// Value implements driver.Valuer interface
func (j JSONBMap) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner interface
func (j *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*j = make(JSONBMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*j = make(JSONBMap)
		return nil
	}

	if len(bytes) == 0 {
		*j = make(JSONBMap)
		return nil
	}

	result := make(JSONBMap)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// Submission is one stored intake questionnaire as the client sent it.
type Submission struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ClientName  string    `json:"client_name" db:"client_name"`
	ClientEmail string    `json:"client_email" db:"client_email"`
	Answers     JSONBMap  `json:"answers" db:"answers"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// NewSubmission creates a submission record for raw intake answers.
func NewSubmission(clientName, clientEmail string, answers map[string]interface{}) *Submission {
	return &Submission{
		ID:          uuid.New(),
		ClientName:  clientName,
		ClientEmail: clientEmail,
		Answers:     JSONBMap(answers),
		CreatedAt:   time.Now(),
	}
}

// DiagnosisRecord is the flattened, persisted form of one engine run.
type DiagnosisRecord struct {
	ID           uuid.UUID `json:"id" db:"id"`
	SubmissionID uuid.UUID `json:"submission_id" db:"submission_id"`
	Track        string    `json:"track" db:"track"`

	PrimaryKey     string  `json:"primary_key" db:"primary_key"`
	PrimaryName    string  `json:"primary_name" db:"primary_name"`
	PrimaryScore   int     `json:"primary_score" db:"primary_score"`
	SecondaryKey   *string `json:"secondary_key,omitempty" db:"secondary_key"`
	SecondaryScore *int    `json:"secondary_score,omitempty" db:"secondary_score"`

	HourlyRate     int     `json:"hourly_rate" db:"hourly_rate"`
	WasteHoursMin  float64 `json:"waste_hours_min" db:"waste_hours_min"`
	WasteHoursMax  float64 `json:"waste_hours_max" db:"waste_hours_max"`
	AnnualCostLow  int     `json:"annual_cost_low" db:"annual_cost_low"`
	AnnualCostMid  int     `json:"annual_cost_mid" db:"annual_cost_mid"`
	AnnualCostHigh int     `json:"annual_cost_high" db:"annual_cost_high"`

	TurnoverCost   int `json:"turnover_cost" db:"turnover_cost"`
	TeamIdleCost   int `json:"team_idle_cost" db:"team_idle_cost"`
	RevenueLeakage int `json:"revenue_leakage" db:"revenue_leakage"`
	GrowthBlocked  int `json:"growth_blocked" db:"growth_blocked"`

	TrappedScale int       `json:"trapped_scale" db:"trapped_scale"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
