// Command kericli is a thin demonstration CLI over pkg/identity: it
// creates an identifier, rotates its keys, anchors an interaction,
// and exports the resulting log, all in a single in-memory run.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/certen/keri-core/pkg/cesr"
	"github.com/certen/keri-core/pkg/config"
	"github.com/certen/keri-core/pkg/event"
	"github.com/certen/keri-core/pkg/identity"
	"github.com/certen/keri-core/pkg/kel"
	"github.com/certen/keri-core/pkg/keys"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	witnesses := flag.String("witnesses", "", "comma-separated witness IDs to seed at inception")
	anchor := flag.String("anchor", "", "optional JSON anchor object to attach to the interaction event")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	runID := uuid.New().String()
	log.Printf("run %s: starting demo lifecycle (log level %s)", runID, cfg.LogLevel)

	if err := run(runID, cfg, *witnesses, *anchor); err != nil {
		log.Fatalf("run %s: %v", runID, err)
	}
}

func run(runID string, cfg *config.Config, witnessList, anchorJSON string) error {
	eventLog := kel.New()
	id := identity.New(eventLog)

	signer, err := loadOrGenerateSigner(cfg.SeedKeyPath)
	if err != nil {
		return fmt.Errorf("load signing key: %w", err)
	}
	nextSigner, err := keys.NewRandomSigner(true)
	if err != nil {
		return fmt.Errorf("generate next signer: %w", err)
	}

	witnesses := splitNonEmpty(witnessList)
	witnessThreshold := cfg.DefaultWitnessThreshold
	if witnessThreshold == 0 && len(witnesses) > 0 {
		witnessThreshold = len(witnesses)
	}

	state, err := id.CreateIdentifier(identity.CreateIdentifierParams{
		Signer:           signer,
		NextSigner:       nextSigner,
		Witnesses:        witnesses,
		WitnessThreshold: witnessThreshold,
	})
	if err != nil {
		return fmt.Errorf("create identifier: %w", err)
	}
	fmt.Printf("run %s: created %s at sequence %d\n", runID, state.Prefix, state.Sequence)

	rotSigner, err := keys.NewRandomSigner(true)
	if err != nil {
		return fmt.Errorf("generate rotation signer: %w", err)
	}
	state, err = id.RotateKeys(identity.RotateKeysParams{
		Prefix:        state.Prefix,
		CurrentSigner: signer,
		NewSigner:     nextSigner,
		NextSigner:    rotSigner,
	})
	if err != nil {
		return fmt.Errorf("rotate keys: %w", err)
	}
	fmt.Printf("run %s: rotated %s to sequence %d\n", runID, state.Prefix, state.Sequence)

	var anchors []event.Anchor
	if anchorJSON != "" {
		anchors = []event.Anchor{event.Anchor(anchorJSON)}
	}
	state, err = id.CreateInteraction(identity.CreateInteractionParams{
		Prefix:  state.Prefix,
		Signer:  nextSigner,
		Anchors: anchors,
	})
	if err != nil {
		return fmt.Errorf("create interaction: %w", err)
	}
	fmt.Printf("run %s: anchored interaction at sequence %d\n", runID, state.Sequence)

	if err := id.VerifyIdentifier(state.Prefix); err != nil {
		return fmt.Errorf("verify identifier: %w", err)
	}

	envelope, err := id.ExportIdentifier(state.Prefix)
	if err != nil {
		return fmt.Errorf("export identifier: %w", err)
	}
	enc, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	os.Stdout.Write(enc)
	os.Stdout.Write([]byte("\n"))
	return nil
}

// loadOrGenerateSigner reads a 32-byte Ed25519 seed from path if one
// is configured, otherwise draws a fresh random signer.
func loadOrGenerateSigner(path string) (keys.Signer, error) {
	if path == "" {
		return keys.NewRandomSigner(true)
	}
	seed, err := os.ReadFile(path)
	if err != nil {
		return keys.Signer{}, fmt.Errorf("read seed file %s: %w", path, err)
	}
	if len(seed) != 32 {
		return keys.Signer{}, fmt.Errorf("seed file %s: expected 32 bytes, got %d", path, len(seed))
	}
	qb64, err := cesr.Encode(cesr.CodeEd25519Seed, seed)
	if err != nil {
		return keys.Signer{}, err
	}
	return keys.ImportSigner(qb64, true)
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
