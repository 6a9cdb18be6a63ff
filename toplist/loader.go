package toplist

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/archiver/extractor"
	"code.cloudfoundry.org/lager"

	"github.com/passrisk/passrisk/mimetype"
)

// Load reads a top-passwords list from a local file and builds its rank
// table. Archived lists (.gz, .zip, .tar, .tgz) are inflated into a temporary
// directory first; the first regular file found inside is taken as the list.
func Load(logger lager.Logger, path string) (*Table, error) {
	logger = logger.Session("load-top-list", lager.Data{"path": path})
	logger.Debug("starting")
	defer logger.Debug("done")

	if _, isArchive := mimetype.IsArchive(path); isArchive {
		return loadArchived(logger, path)
	}

	file, err := os.Open(path)
	if err != nil {
		logger.Error("open-failed", err)
		return nil, err
	}
	defer file.Close()

	return ParseLines(file)
}

func loadArchived(logger lager.Logger, path string) (*Table, error) {
	inflateDir, err := ioutil.TempDir("", "passrisk-toplist")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(inflateDir)

	if err := extractor.NewDetectable().Extract(path, inflateDir); err != nil {
		logger.Error("inflate-failed", err)
		return nil, err
	}

	listPath, err := firstRegularFile(inflateDir)
	if err != nil {
		logger.Error("no-list-in-archive", err)
		return nil, err
	}

	file, err := os.Open(listPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseLines(file)
}

func firstRegularFile(dir string) (string, error) {
	var found string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if found == "" && info.Mode().IsRegular() {
			found = path
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	if found == "" {
		return "", errors.New("archive contains no regular files")
	}

	return found, nil
}
