// Package assets fetches and decodes the texture set ahead of the render
// loop. Loading is the engine's only asynchronous boundary: a worker pool
// fetches and decodes off the main goroutine and the result is handed back
// through a one-shot future. The render loop starts only after the future
// resolves.
package assets

import (
	"bytes"
	"fmt"

	"gridcast/internal/config"
	"gridcast/internal/farbfeld"
	"gridcast/internal/texture"
)

// Load is a one-shot future for the decoded texture store. It starts in the
// "not yet loaded" state; once done it stays resolved forever.
type Load struct {
	done  chan struct{}
	store *texture.Store
	err   error
}

// Begin starts fetching and decoding every texture named in the manifest.
// It returns immediately; the caller polls Ready or blocks on Wait.
func Begin(src Source, manifest config.AssetsConfig) *Load {
	l := &Load{done: make(chan struct{})}
	go l.run(src, manifest)
	return l
}

// Ready reports whether loading has finished, successfully or not, without
// blocking.
func (l *Load) Ready() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}

// Wait blocks until loading finishes and returns the store or the first
// error encountered.
func (l *Load) Wait() (*texture.Store, error) {
	<-l.done
	return l.store, l.err
}

type wallJob struct {
	id   int
	name string
	tex  *texture.Texture
	err  error
}

type spriteJob struct {
	name  string
	frame int
	file  string
	tex   *texture.Texture
	err   error
}

func (l *Load) run(src Source, manifest config.AssetsConfig) {
	defer close(l.done)

	walls := make([]wallJob, 0, len(manifest.WallTextures))
	for id, name := range manifest.WallTextures {
		walls = append(walls, wallJob{id: id, name: name})
	}
	var sprites []spriteJob
	for name, def := range manifest.Sprites {
		for i, file := range def.Frames {
			sprites = append(sprites, spriteJob{name: name, frame: i, file: file})
		}
	}

	pool := newWorkerPool(0)
	pool.start()
	defer pool.stop()

	for i := range walls {
		job := &walls[i]
		pool.submit(func() {
			job.tex, job.err = fetchTexture(src, job.name)
		})
	}
	for i := range sprites {
		job := &sprites[i]
		pool.submit(func() {
			job.tex, job.err = fetchTexture(src, job.file)
		})
	}
	pool.wait()

	store := texture.NewStore()
	for _, job := range walls {
		if job.err != nil {
			l.err = fmt.Errorf("wall texture %d (%s): %w", job.id, job.name, job.err)
			return
		}
		store.Walls[job.id] = job.tex
	}
	for name, def := range manifest.Sprites {
		store.Sprites[name] = make([]*texture.Texture, len(def.Frames))
	}
	for _, job := range sprites {
		if job.err != nil {
			l.err = fmt.Errorf("sprite %s frame %d (%s): %w", job.name, job.frame, job.file, job.err)
			return
		}
		store.Sprites[job.name][job.frame] = job.tex
	}
	l.store = store
}

func fetchTexture(src Source, name string) (*texture.Texture, error) {
	raw, err := src.Fetch(name)
	if err != nil {
		return nil, err
	}
	img, err := farbfeld.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	return texture.FromFarbfeld(img)
}
