package main

import (
	"context"
	"log"
	"path/filepath"

	"github.com/milk9111/ledgrid/atlas"
	"github.com/milk9111/ledgrid/config"
)

// watchedFiles lists the project file and, when it can be found, the atlas
// image the PNG export reads.
func (p *printer) watchedFiles() []string {
	files := []string{p.spec.Project}
	if p.spec.Atlas.Path == "" {
		return files
	}
	path, err := atlas.Resolve(p.spec.Atlas, filepath.Dir(p.spec.Project))
	if err != nil {
		log.Printf("ledprint: not watching atlas: %v", err)
		return files
	}
	return append(files, path)
}

// watch runs once, then again every time the project or the atlas changes,
// until ctx is done.
func (p *printer) watch(ctx context.Context) error {
	if err := p.run(ctx); err != nil {
		log.Printf("ledprint: %v", err)
	}

	files := p.watchedFiles()
	w, err := config.WatchFiles(files...)
	if err != nil {
		return err
	}
	defer w.Close()

	watched := make(map[string]bool, len(files))
	for _, f := range files {
		watched[filepath.Clean(f)] = true
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(path)] {
				continue
			}
			log.Printf("ledprint: %s changed", path)
			if err := p.run(ctx); err != nil {
				log.Printf("ledprint: %v", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("ledprint: watch: %v", err)
		}
	}
}
