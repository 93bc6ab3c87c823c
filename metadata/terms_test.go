package metadata

import (
	"reflect"
	"testing"
)

func TestTerms(t *testing.T) {
	tests := []struct {
		name    string
		rows    []Row
		columns []string
		want    []string
	}{
		{
			name: "ordered by descending count",
			rows: []Row{
				{"subject": "Farms"},
				{"subject": "Fairs"},
				{"subject": "Fairs"},
			},
			columns: []string{"subject"},
			want:    []string{"Fairs", "Farms"},
		},
		{
			name: "ties keep first-seen order",
			rows: []Row{
				{"subject": "Barns"},
				{"subject": "Silos"},
				{"subject": "Windmills"},
			},
			columns: []string{"subject"},
			want:    []string{"Barns", "Silos", "Windmills"},
		},
		{
			name: "cells split on the delimiter",
			rows: []Row{
				{"subject": "Farms;Fairs"},
				{"subject": "Fairs"},
			},
			columns: []string{"subject"},
			want:    []string{"Fairs", "Farms"},
		},
		{
			name:    "single cell splits into count-one terms in cell order",
			rows:    []Row{{"subject": "A;B;C"}},
			columns: []string{"subject"},
			want:    []string{"A", "B", "C"},
		},
		{
			name: "pieces are not trimmed",
			rows: []Row{
				{"subject": "Farms; Fairs"},
				{"subject": "Fairs"},
			},
			columns: []string{"subject"},
			want:    []string{"Farms", " Fairs", "Fairs"},
		},
		{
			name: "multiple columns pooled in column order",
			rows: []Row{
				{"creator": "Mills, Frank", "contributor": "Field, Ada"},
				{"creator": "Mills, Frank"},
			},
			columns: []string{"creator", "contributor"},
			want:    []string{"Mills, Frank", "Field, Ada"},
		},
		{
			name: "empty cells and absent columns skipped",
			rows: []Row{
				{"subject": ""},
				{},
				{"subject": "Fairs"},
			},
			columns: []string{"subject"},
			want:    []string{"Fairs"},
		},
		{
			name:    "no rows",
			rows:    nil,
			columns: []string{"subject"},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Terms(tt.rows, tt.columns...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Terms() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTermsDelimited(t *testing.T) {
	rows := []Row{
		{"subject": "Farms|Fairs"},
		{"subject": "Fairs"},
	}

	got := TermsDelimited(rows, "|", "subject")
	want := []string{"Fairs", "Farms"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TermsDelimited() = %v, want %v", got, want)
	}
}

func TestTermsWithSource(t *testing.T) {
	tests := []struct {
		name string
		rows []Row
		want []TermSource
	}{
		{
			name: "pairs follow cell positions",
			rows: []Row{
				{
					"subject":          "Mills, Frank;Field, Ada",
					"subject_valueURI": "http://id.loc.gov/1;http://id.worldcat.org/fast/2",
				},
			},
			want: []TermSource{
				{Term: "Mills, Frank", URI: "http://id.loc.gov/1"},
				{Term: "Field, Ada", URI: "http://id.worldcat.org/fast/2"},
			},
		},
		{
			name: "missing trailing URIs become empty",
			rows: []Row{
				{
					"subject":          "Mills, Frank;Field, Ada",
					"subject_valueURI": "http://id.loc.gov/1",
				},
			},
			want: []TermSource{
				{Term: "Mills, Frank", URI: "http://id.loc.gov/1"},
				{Term: "Field, Ada", URI: ""},
			},
		},
		{
			name: "single term keeps the whole URI cell",
			rows: []Row{
				{
					"subject":          "Mills, Frank",
					"subject_valueURI": "http://id.loc.gov/1;http://id.loc.gov/2",
				},
			},
			want: []TermSource{
				{Term: "Mills, Frank", URI: "http://id.loc.gov/1;http://id.loc.gov/2"},
			},
		},
		{
			name: "absent URI column pairs with empty",
			rows: []Row{
				{"subject": "Mills, Frank;Field, Ada"},
			},
			want: []TermSource{
				{Term: "Mills, Frank", URI: ""},
				{Term: "Field, Ada", URI: ""},
			},
		},
		{
			name: "counted as term and URI pairs",
			rows: []Row{
				{"subject": "Mills, Frank", "subject_valueURI": "http://id.loc.gov/1"},
				{"subject": "Mills, Frank", "subject_valueURI": "http://id.loc.gov/1"},
				{"subject": "Mills, Frank", "subject_valueURI": ""},
				{"subject": "Field, Ada", "subject_valueURI": ""},
			},
			want: []TermSource{
				{Term: "Mills, Frank", URI: "http://id.loc.gov/1"},
				{Term: "Mills, Frank", URI: ""},
				{Term: "Field, Ada", URI: ""},
			},
		},
		{
			name: "empty term cells skipped",
			rows: []Row{
				{"subject": "", "subject_valueURI": "http://id.loc.gov/1"},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TermsWithSource(tt.rows, "subject")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TermsWithSource() = %v, want %v", got, tt.want)
			}
		})
	}
}
