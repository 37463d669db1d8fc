package nasr_test

import (
	"errors"
	"testing"

	"github.com/airnav-tools/nasr/pkg/nasr"
)

func sampleAirports() []*nasr.Airport {
	return []*nasr.Airport{
		{SiteNumber: "04508.*A", LID: "BOI", Name: "BOISE AIR TERMINAL", BoundaryARTCCID: "ZLC", TieInFSSID: "BOI"},
		{SiteNumber: "01818.*A", LID: "ANC", Name: "TED STEVENS ANCHORAGE INTL", BoundaryARTCCID: "ZAN"},
	}
}

func sampleFSSes() []*nasr.FSS {
	return []*nasr.FSS{
		{Ident: "BOI", Name: "BOISE", AirportSiteNumber: "04508.*A"},
	}
}

// TestPopulate_ResolutionOrderIndependent verifies that cross-reference
// resolution between two record types returns identical results regardless
// of which type was populated first.
func TestPopulate_ResolutionOrderIndependent(t *testing.T) {
	resolve := func(airportsFirst bool) (string, string) {
		data := nasr.NewData(nasr.Cycle{})
		if airportsFirst {
			if err := data.Populate(nasr.RecordTypeAirports, sampleAirports()); err != nil {
				t.Fatalf("populate airports: %v", err)
			}
			if err := data.Populate(nasr.RecordTypeFSSes, sampleFSSes()); err != nil {
				t.Fatalf("populate fsses: %v", err)
			}
		} else {
			if err := data.Populate(nasr.RecordTypeFSSes, sampleFSSes()); err != nil {
				t.Fatalf("populate fsses: %v", err)
			}
			if err := data.Populate(nasr.RecordTypeAirports, sampleAirports()); err != nil {
				t.Fatalf("populate airports: %v", err)
			}
		}

		airport := data.FindAirport("04508.*A")
		if airport == nil {
			t.Fatal("airport not found after populate")
		}
		fss := airport.TieInFSS()
		if fss == nil {
			t.Fatal("tie-in FSS did not resolve")
		}
		back := fss.Airport()
		if back == nil {
			t.Fatal("FSS airport did not resolve")
		}
		return fss.Name, back.Name
	}

	fssA, airportA := resolve(true)
	fssB, airportB := resolve(false)

	if fssA != fssB || airportA != airportB {
		t.Errorf("resolution depends on populate order: (%q,%q) vs (%q,%q)",
			fssA, airportA, fssB, airportB)
	}
}

// TestResolution_UnpopulatedCollectionIsAbsent verifies that resolving
// against a type that has not been populated returns nil, never an error.
func TestResolution_UnpopulatedCollectionIsAbsent(t *testing.T) {
	data := nasr.NewData(nasr.Cycle{})
	if err := data.Populate(nasr.RecordTypeAirports, sampleAirports()); err != nil {
		t.Fatalf("populate airports: %v", err)
	}

	airport := data.FindAirport("04508.*A")
	if airport == nil {
		t.Fatal("airport not found")
	}

	if fss := airport.TieInFSS(); fss != nil {
		t.Errorf("expected nil FSS before FSS populate, got %+v", fss)
	}
	if artcc := airport.BoundaryARTCC(); artcc != nil {
		t.Errorf("expected nil ARTCC before ARTCC populate, got %+v", artcc)
	}
	if data.FSSes() != nil {
		t.Error("expected nil FSS collection before populate")
	}
}

// TestResolution_MissingKeyInPopulatedCollection verifies absent-within-
// populated is also soft.
func TestResolution_MissingKeyInPopulatedCollection(t *testing.T) {
	data := nasr.NewData(nasr.Cycle{})
	if err := data.Populate(nasr.RecordTypeFSSes, sampleFSSes()); err != nil {
		t.Fatalf("populate fsses: %v", err)
	}

	if got := data.FindFSS("XYZ"); got != nil {
		t.Errorf("expected nil for unknown ident, got %+v", got)
	}
}

// TestPopulate_TwiceFails verifies the populate-once invariant.
func TestPopulate_TwiceFails(t *testing.T) {
	data := nasr.NewData(nasr.Cycle{})
	if err := data.Populate(nasr.RecordTypeAirports, sampleAirports()); err != nil {
		t.Fatalf("first populate: %v", err)
	}

	err := data.Populate(nasr.RecordTypeAirports, sampleAirports())
	if !errors.Is(err, nasr.ErrAlreadyPopulated) {
		t.Errorf("expected ErrAlreadyPopulated, got %v", err)
	}
}

// TestPopulate_WrongSliceType verifies the type check on the collection.
func TestPopulate_WrongSliceType(t *testing.T) {
	data := nasr.NewData(nasr.Cycle{})
	err := data.Populate(nasr.RecordTypeAirports, sampleFSSes())
	if err == nil {
		t.Fatal("expected error for mismatched slice type")
	}
	if !errors.Is(err, nasr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

// TestPopulate_BindsNestedFrequencies verifies resolver installation on
// nested sub-structures at populate time.
func TestPopulate_BindsNestedFrequencies(t *testing.T) {
	data := nasr.NewData(nasr.Cycle{})

	artccs := []*nasr.ARTCC{
		{
			Ident:        "ZLC",
			LocationName: "SALT LAKE CITY",
			FacilityType: nasr.ARTCCFacilityCenter,
			Frequencies: []nasr.CommFrequency{
				{Frequency: nasr.Frequency{KHz: 128200}, AirportSiteNumber: "04508.*A"},
			},
		},
	}
	if err := data.Populate(nasr.RecordTypeARTCCs, artccs); err != nil {
		t.Fatalf("populate artccs: %v", err)
	}
	if err := data.Populate(nasr.RecordTypeAirports, sampleAirports()); err != nil {
		t.Fatalf("populate airports: %v", err)
	}

	freq := &data.ARTCCs()[0].Frequencies[0]
	airport := freq.AssociatedAirport()
	if airport == nil || airport.LID != "BOI" {
		t.Errorf("frequency did not resolve its airport, got %+v", airport)
	}
}
