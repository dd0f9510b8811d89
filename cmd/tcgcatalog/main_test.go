package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tcgcatalog/internal/analysis"
	"tcgcatalog/internal/apiclient"
	"tcgcatalog/internal/config"
)

func TestPrintReport(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	printReport(&out, analysis.Report{
		SetID:           "base1",
		TotalPokemon:    2,
		WithAttacks:     2,
		AttacksAnalyzed: 3,
		HP:              analysis.Stats{Min: 40, Max: 120, Avg: 80, Count: 2},
		RetreatCost:     analysis.Stats{Min: 1, Max: 3, Avg: 2, Count: 2},
	}, "=====")

	text := out.String()
	for _, want := range []string{
		"BASE1 POKÉMON ANALYSIS",
		"Total Pokémon: 2",
		"Total attacks analyzed: 3",
		"  Max HP: 120",
		"  Avg HP: 80.00",
		"  Max Retreat Cost: 3",
		"  Pokémon analyzed: 2",
		"=====",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q:\n%s", want, text)
		}
	}
}

func TestRunInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tcgcatalog.yaml")
	if err := runInit(path); err != nil {
		t.Fatalf("runInit: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != config.Starter {
		t.Errorf("unexpected contents:\n%s", data)
	}
	if err := runInit(path); err == nil {
		t.Fatal("expected error when config exists")
	}
}

func TestOpenDB_RejectsUnknownScheme(t *testing.T) {
	cfg := config.Default()
	cfg.Database.DSN = "mysql://localhost/tcg"
	if _, err := openDB(t.Context(), &cfg); err == nil {
		t.Fatal("expected error")
	}
}

func TestAnalyzeSet_CancelAbortsAPICall(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	client, err := apiclient.New(srv.URL, apiclient.WithTimeout(time.Minute))
	if err != nil {
		t.Fatalf("apiclient.New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- analyzeSet(ctx, &bytes.Buffer{}, client, "base1")
	}()

	<-started
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("analysis did not stop after cancel")
	}
}
