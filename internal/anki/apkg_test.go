package anki

import (
	"archive/zip"
	"database/sql"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/spellbee/internal/audio"
)

func testCards() []Card {
	return []Card{
		{
			Word:       "rhythm",
			Definition: "______\nA strong regular pattern.\nShe kept the ______.",
			Audio:      &audio.Clip{Data: []byte("wav data"), Format: "wav"},
		},
		{
			Word:       "necessary",
			Definition: "_________\nNeeded.",
			Notes:      "2 attempts",
		},
	}
}

func readZip(t *testing.T, path string) map[string][]byte {
	t.Helper()

	reader, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("Failed to open package: %v", err)
	}
	defer reader.Close()

	files := make(map[string][]byte)
	for _, f := range reader.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("Failed to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("Failed to read %s: %v", f.Name, err)
		}
		files[f.Name] = data
	}
	return files
}

func TestNewAPKGGenerator(t *testing.T) {
	gen := NewAPKGGenerator("Test Deck")

	if gen.deckName != "Test Deck" {
		t.Errorf("Expected deck name 'Test Deck', got '%s'", gen.deckName)
	}
	if gen.modelID == gen.deckID {
		t.Error("Expected distinct deck and model IDs")
	}
	if len(gen.cards) != 0 {
		t.Errorf("Expected no cards, got %d", len(gen.cards))
	}
}

func TestGenerateAPKG(t *testing.T) {
	gen := NewAPKGGenerator("Spelling Test")
	for _, card := range testCards() {
		gen.AddCard(card)
	}

	outputPath := filepath.Join(t.TempDir(), "deck.apkg")
	if err := gen.GenerateAPKG(outputPath); err != nil {
		t.Fatalf("GenerateAPKG() error = %v", err)
	}

	files := readZip(t, outputPath)

	for _, name := range []string{"collection.anki2", "media", "0"} {
		if _, ok := files[name]; !ok {
			t.Errorf("Package is missing %s", name)
		}
	}
	if _, ok := files["1"]; ok {
		t.Error("Card without audio must not add a media file")
	}
	if string(files["0"]) != "wav data" {
		t.Errorf("Media 0 = %q, want the clip data", files["0"])
	}

	var media map[string]string
	if err := json.Unmarshal(files["media"], &media); err != nil {
		t.Fatalf("Failed to decode media index: %v", err)
	}
	if len(media) != 1 || !strings.HasSuffix(media["0"], ".wav") {
		t.Errorf("Unexpected media index %v", media)
	}

	dbPath := filepath.Join(t.TempDir(), "collection.anki2")
	if err := writeFile(dbPath, files["collection.anki2"]); err != nil {
		t.Fatalf("Failed to extract collection: %v", err)
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("Failed to open collection: %v", err)
	}
	defer db.Close()

	var notes, cards int
	if err := db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&notes); err != nil {
		t.Fatalf("Failed to count notes: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM cards").Scan(&cards); err != nil {
		t.Fatalf("Failed to count cards: %v", err)
	}
	if notes != 2 || cards != 2 {
		t.Errorf("Expected 2 notes and 2 cards, got %d and %d", notes, cards)
	}

	var flds, sfld, guid string
	if err := db.QueryRow("SELECT flds, sfld, guid FROM notes ORDER BY id LIMIT 1").Scan(&flds, &sfld, &guid); err != nil {
		t.Fatalf("Failed to read note: %v", err)
	}
	fields := strings.Split(flds, fieldSeparator)
	if len(fields) != 4 {
		t.Fatalf("Expected 4 fields, got %d", len(fields))
	}
	if fields[0] != "rhythm" || sfld != "rhythm" {
		t.Errorf("Unexpected word field %q / sort field %q", fields[0], sfld)
	}
	if fields[1] != "______<br>A strong regular pattern.<br>She kept the ______." {
		t.Errorf("Unexpected definition field %q", fields[1])
	}
	if fields[2] != "[sound:"+media["0"]+"]" {
		t.Errorf("Audio field %q does not reference %s", fields[2], media["0"])
	}
	if len(guid) != 36 {
		t.Errorf("Expected a UUID guid, got %q", guid)
	}

	var decks string
	if err := db.QueryRow("SELECT decks FROM col").Scan(&decks); err != nil {
		t.Fatalf("Failed to read decks: %v", err)
	}
	if !strings.Contains(decks, "Spelling Test") {
		t.Errorf("Deck name missing from collection: %s", decks)
	}
}
