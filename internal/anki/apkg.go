package anki

import (
	"archive/zip"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// fieldSeparator joins note fields in the notes table
const fieldSeparator = "\x1f"

// APKGGenerator creates Anki package files (.apkg)
type APKGGenerator struct {
	deckName string
	deckID   int64
	modelID  int64
	cards    []Card
}

// NewAPKGGenerator creates a new APKG generator
func NewAPKGGenerator(deckName string) *APKGGenerator {
	now := time.Now().UnixMilli()
	return &APKGGenerator{
		deckName: deckName,
		deckID:   now,
		modelID:  now + 1,
	}
}

// AddCard adds a card to the generator
func (g *APKGGenerator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// GenerateAPKG writes the package to outputPath. The package is a zip
// holding the SQLite collection, the numbered media files and the media
// index mapping numbers to file names.
func (g *APKGGenerator) GenerateAPKG(outputPath string) error {
	buildDir, err := os.MkdirTemp("", "spellbee_apkg_*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(buildDir)

	names := mediaNames(g.cards)

	dbPath := filepath.Join(buildDir, "collection.anki2")
	if err := g.createDatabase(dbPath, names); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	collection, err := os.ReadFile(dbPath)
	if err != nil {
		return fmt.Errorf("failed to read database: %w", err)
	}

	if err := g.writePackage(outputPath, collection, names); err != nil {
		return fmt.Errorf("failed to create zip package: %w", err)
	}
	return nil
}

// createDatabase creates the Anki SQLite collection
func (g *APKGGenerator) createDatabase(dbPath string, names []string) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, query := range schema {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}

	if err := g.insertCollection(db); err != nil {
		return fmt.Errorf("failed to insert collection: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := g.insertNotes(tx, names); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert notes: %w", err)
	}
	return tx.Commit()
}

func (g *APKGGenerator) insertCollection(db *sql.DB) error {
	now := time.Now().Unix()

	conf, err := json.Marshal(collectionConfig(g.modelID))
	if err != nil {
		return err
	}
	models, err := json.Marshal(map[string]interface{}{
		strconv.FormatInt(g.modelID, 10): noteType(g.modelID, g.deckID, now),
	})
	if err != nil {
		return err
	}
	decks, err := json.Marshal(map[string]interface{}{
		"1":                             deck(1, "Default", "", now),
		strconv.FormatInt(g.deckID, 10): deck(g.deckID, g.deckName, "Spelling practice exported by spellbee", now),
	})
	if err != nil {
		return err
	}
	dconf, err := json.Marshal(map[string]interface{}{"1": deckOptions(now)})
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT INTO col VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		1,        // id
		now,      // crt
		now*1000, // mod
		now*1000, // scm
		11,       // ver
		0,        // dty
		0,        // usn
		0,        // ls
		string(conf),
		string(models),
		string(decks),
		string(dconf),
		"{}",
	)
	return err
}

// insertNotes adds one note and one card per spelled word
func (g *APKGGenerator) insertNotes(tx *sql.Tx, names []string) error {
	now := time.Now()

	for i, card := range g.cards {
		noteID := now.UnixMilli() + int64(i*2)
		cardID := noteID + 1

		fields := strings.Join([]string{
			card.Word,
			definitionHTML(card.Definition),
			soundField(names[i]),
			card.Notes,
		}, fieldSeparator)

		_, err := tx.Exec(`INSERT INTO notes VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			noteID,
			uuid.NewString(), // guid
			g.modelID,
			now.Unix(),
			-1, // usn
			"spelling",
			fields,
			card.Word, // sort field
			0,         // csum
			0,         // flags
			"",
		)
		if err != nil {
			return fmt.Errorf("note for '%s': %w", card.Word, err)
		}

		_, err = tx.Exec(`INSERT INTO cards VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			cardID,
			noteID,
			g.deckID,
			0, // ord
			now.Unix(),
			-1,    // usn
			0,     // type new
			0,     // queue new
			i + 1, // due position
			0, 0, 0, 0, 0, 0, 0, 0,
			"",
		)
		if err != nil {
			return fmt.Errorf("card for '%s': %w", card.Word, err)
		}
	}
	return nil
}

// writePackage zips the collection and the audio clips
func (g *APKGGenerator) writePackage(outputPath string, collection []byte, names []string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer file.Close()

	archive := zip.NewWriter(file)

	add := func(name string, data []byte) error {
		w, err := archive.Create(name)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	if err := add("collection.anki2", collection); err != nil {
		return err
	}

	media := make(map[string]string)
	n := 0
	for i, card := range g.cards {
		if names[i] == "" {
			continue
		}
		key := strconv.Itoa(n)
		if err := add(key, card.Audio.Data); err != nil {
			return err
		}
		media[key] = names[i]
		n++
	}

	index, err := json.Marshal(media)
	if err != nil {
		return err
	}
	if err := add("media", index); err != nil {
		return err
	}

	if err := archive.Close(); err != nil {
		return err
	}
	return file.Close()
}
