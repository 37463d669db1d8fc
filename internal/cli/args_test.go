package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/airnav-tools/nasr/pkg/nasr"
)

func TestRequireDistributionPath(t *testing.T) {
	cmd := &cobra.Command{
		Use: "parse <distribution_path>",
	}

	t.Run("returns error when no args", func(t *testing.T) {
		err := RequireDistributionPath(cmd, []string{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "missing required argument: <distribution_path>") {
			t.Errorf("expected error to contain 'missing required argument: <distribution_path>', got: %s", err.Error())
		}
		if !strings.Contains(err.Error(), "Example:") {
			t.Errorf("expected error to contain 'Example:', got: %s", err.Error())
		}
	})

	t.Run("returns nil when arg provided", func(t *testing.T) {
		err := RequireDistributionPath(cmd, []string{"./28DaySubscription"})
		if err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("returns error when too many args", func(t *testing.T) {
		err := RequireDistributionPath(cmd, []string{"a", "b"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "accepts 1 arg") {
			t.Errorf("expected error to contain 'accepts 1 arg', got: %s", err.Error())
		}
	})
}

func TestResolveRecordTypes(t *testing.T) {
	t.Run("empty means all types", func(t *testing.T) {
		types, err := resolveRecordTypes(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if types != nil {
			t.Errorf("expected nil (all types), got %v", types)
		}
	})

	t.Run("names are case-insensitive", func(t *testing.T) {
		types, err := resolveRecordTypes([]string{"apt", "Fss", "AWOS"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []nasr.RecordType{nasr.RecordTypeAirports, nasr.RecordTypeFSSes, nasr.RecordTypeWeatherStations}
		if len(types) != len(want) {
			t.Fatalf("expected %d types, got %d", len(want), len(types))
		}
		for i := range want {
			if types[i] != want[i] {
				t.Errorf("types[%d] = %q, want %q", i, types[i], want[i])
			}
		}
	})

	t.Run("unknown name fails", func(t *testing.T) {
		_, err := resolveRecordTypes([]string{"apt", "nav"})
		if !errors.Is(err, nasr.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got: %v", err)
		}
	})
}
