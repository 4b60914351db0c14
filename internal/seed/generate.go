package seed

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
)

// generatorSeed pins the synthetic set. Changing it changes every generated
// record, so treat it as part of the format.
const generatorSeed = 20240101

var (
	genVerbs = []string{
		"Renew", "Upsell", "Onboard", "Audit", "Migrate", "Demo",
		"Negotiate", "Close", "Expand", "Retain",
	}
	genAccounts = []string{
		"Acme Corp", "Globex", "Initech", "Umbrella Ltd", "Stark Industries",
		"Wayne Enterprises", "Hooli", "Pied Piper", "Vandelay", "Wonka Co",
	}
	genPriorities = []string{"low", "medium", "high"}
	genStatuses   = []string{"not_started", "in_progress", "done"}
)

// Generate produces n synthetic raw records in the same loose shape a seed
// file uses. The records come from a fixed-seed PRNG: two calls with the
// same n are identical, across processes and across runs. No timestamps are
// emitted, so normalization assigns its deterministic positional fallbacks.
func Generate(n int) []map[string]any {
	if n <= 0 {
		return []map[string]any{}
	}

	rng := rand.New(rand.NewSource(generatorSeed))
	raws := make([]map[string]any, n)
	for i := range raws {
		verb := genVerbs[rng.Intn(len(genVerbs))]
		account := genAccounts[rng.Intn(len(genAccounts))]

		// Revenue in whole dollars between -500 (a written-off deal) and 9500.
		revenue := float64(rng.Intn(10001) - 500)
		// Between half an hour and 40 hours, in half-hour steps.
		timeTaken := float64(rng.Intn(80)+1) / 2

		raws[i] = map[string]any{
			"id":        fmt.Sprintf("seed-%03d", i+1),
			"title":     fmt.Sprintf("%s %s", verb, account),
			"revenue":   revenue,
			"timeTaken": timeTaken,
			"priority":  genPriorities[rng.Intn(len(genPriorities))],
			"status":    genStatuses[rng.Intn(len(genStatuses))],
		}
	}
	return raws
}

// Write generates n records and writes them as an indented JSON array to
// path, creating parent directories as needed. Used by the seed subcommand
// to produce a starting data file.
func Write(path string, n int) error {
	raws := Generate(n)
	data, err := json.MarshalIndent(raws, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode seed data: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create seed directory: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write seed file: %w", err)
	}
	return nil
}
