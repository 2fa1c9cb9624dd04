package feed

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/oarkflow/errors"
	"github.com/oarkflow/log"

	"github.com/oarkflow/tradesignal/utils"
)

// SeedArchive unpacks the bundled daily sheets into directory so the
// pipeline can run before any scrape has happened
func SeedArchive(directory string) error {
	raw, err := utils.Decompress(archiveData)
	if err != nil {
		return errors.NewE(err, "bundled archive is corrupt", "")
	}

	var files map[string]string
	if err := json.Unmarshal(raw, &files); err != nil {
		return errors.NewE(err, "bundled archive is corrupt", "")
	}

	if err := os.MkdirAll(directory, 0755); err != nil {
		return errors.NewE(err, "creating data directory", "")
	}

	for name, content := range files {
		if err := os.WriteFile(filepath.Join(directory, name), []byte(content), 0644); err != nil {
			return errors.NewE(err, "writing "+name, "")
		}
	}

	log.Info().Int("files", len(files)).Str("directory", directory).Msg("Seeded bundled market data")
	return nil
}

// EnsureData seeds the bundled archive when directory has no sheets yet
func EnsureData(directory string) error {
	entries, err := os.ReadDir(directory)
	if err == nil {
		for _, entry := range entries {
			if filepath.Ext(entry.Name()) == ".csv" {
				return nil
			}
		}
	}
	return SeedArchive(directory)
}

// GenerateArchive packs every sheet under directory back into a Go
// source file, keeping the bundled sample in sync with scraped data
func GenerateArchive(directory, outFile string) error {
	files := map[string]string{}
	err := filepath.Walk(directory, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".csv" {
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			files[filepath.Base(path)] = string(content)
		}
		return nil
	})
	if err != nil {
		return errors.NewE(err, "collecting sheets", "")
	}
	if len(files) == 0 {
		return errors.New("no sheets to archive under " + directory)
	}

	payload, err := json.Marshal(files)
	if err != nil {
		return errors.NewE(err, "encoding archive", "")
	}

	return utils.GenerateArchiveFile(outFile, "feed", "archiveData", payload)
}
