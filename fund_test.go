package fortress

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"debt", Debt, false},
		{" Equity ", Equity, false},
		{"COMMODITY", Commodity, false},
		{"", Unspecified, false},
		{"unspecified", Unspecified, false},
		{"crypto", Unspecified, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRegistry_Reclassify(t *testing.T) {
	r := NewState(DefaultSettings()).Funds
	if err := r.Reclassify("SBI Gold Fund", Debt); err != nil {
		t.Fatalf("Reclassify() unexpected error: %v", err)
	}
	if f, _ := r.Lookup("SBI Gold Fund"); f.Category != Debt {
		t.Errorf("category = %v, want %v", f.Category, Debt)
	}
	if err := r.Reclassify("Nope", Debt); !errors.Is(err, ErrUnknownFund) {
		t.Errorf("Reclassify(unknown) error = %v, want %v", err, ErrUnknownFund)
	}
}

func TestRegistry_Suggest(t *testing.T) {
	r := NewState(DefaultSettings()).Funds

	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"ICICI Saving", "ICICI Savings", true},
		{"icici baf", "ICICI BAF", true},
		{"SBI Gold Fnd", "SBI Gold Fund", true},
		{"Something else entirely", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := r.Suggest(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Suggest(%q) = %q, %v, want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	if _, ok := Registry(nil).Suggest("anything"); ok {
		t.Errorf("an empty registry cannot suggest anything")
	}
}

func TestFund_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input   string
		want    Fund
		wantErr bool
	}{
		{`"ICICI BAF"`, Fund{Name: "ICICI BAF"}, false},
		{`{"name": "Gold", "category": "commodity"}`, Fund{Name: "Gold", Category: Commodity}, false},
		{`null`, Fund{}, true},
		{`""`, Fund{}, true},
		{`{"category": "debt"}`, Fund{}, true},
		{`12`, Fund{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got Fund
			err := json.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Unmarshal(%s) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}

	var r Registry
	if err := json.Unmarshal([]byte(`["ICICI BAF", null]`), &r); !errors.Is(err, ErrBlankName) {
		t.Errorf("Unmarshal(registry with null) error = %v, want %v", err, ErrBlankName)
	}
}
