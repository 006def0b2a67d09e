package defs

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Table holds one inflammation dataset: one row per patient, one column per
// day of the trial. Rows loaded from JSON sources may differ in length;
// the daily reductions require a rectangular table and check for it.
type Table [][]float64

// DailySeries holds one value per day, aggregated across all patients.
type DailySeries []float64

// Rows returns the number of patients in the table.
func (t Table) Rows() int {
	return len(t)
}

// Cols returns the number of days in the table, or 0 for an empty table.
func (t Table) Cols() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// Rectangular reports whether every row has the same length.
func (t Table) Rectangular() bool {
	for _, row := range t {
		if len(row) != len(t[0]) {
			return false
		}
	}
	return true
}

// PatientRecord is a single patient's observation series as stored in JSON
// files and Mongo documents.
type PatientRecord struct {
	Observations []float64 `json:"observations" bson:"observations"`
}

// Dataset is a named collection of patient records, the unit stored in Mongo.
type Dataset struct {
	ID       *primitive.ObjectID `bson:"_id,omitempty"`
	Name     string              `bson:"name"`
	Patients []PatientRecord     `bson:"patients"`
}

// Table flattens the dataset's patient records into a table.
func (d *Dataset) Table() Table {
	t := make(Table, len(d.Patients))
	for i, p := range d.Patients {
		t[i] = p.Observations
	}
	return t
}
