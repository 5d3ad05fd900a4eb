package project

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Event is a reload of a watched project. Err is set when the file changed
// but could not be loaded, which is common while an editor is mid-save.
type Event struct {
	Project *Project
	Err     error
}

// Watch reports every write to the project at path until ctx is done. The
// parent directory is watched so editors that replace the file on save are
// followed too. The returned channel is closed when watching stops.
func Watch(ctx context.Context, path string) (<-chan Event, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand project path: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan Event, 1)
	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				p, err := Load(abs)
				select {
				case out <- Event{Project: p, Err: err}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				select {
				case out <- Event{Err: err}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
