package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/ancientlore/cachefs"
	"github.com/fsnotify/fsnotify"
	"github.com/golang/groupcache"
	"github.com/spf13/cobra"

	"github.com/vellumpress/vellum/publish"
	"github.com/vellumpress/vellum/site"
)

var (
	servePort  int
	serveAddr  string
	serveWatch bool
)

// serveCmd runs a local preview HTTP server over the output directory.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the built site over HTTP",
	Long: `Serve exposes the output directory over HTTP for local preview. With
--watch, the site is rebuilt whenever content, templates, or static assets
change.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := site.LoadConfig(configFile)
		if err != nil {
			return err
		}
		return runServe(cfg)
	},
}

func runServe(cfg site.Config) error {
	if serveWatch {
		go watchAndRebuild(cfg)
	}

	// Serve through a groupcache-backed read-only view of the output
	// directory. The short expiration keeps rebuilt pages visible.
	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })
	fsys := cachefs.New(os.DirFS(cfg.Paths.Output), &cachefs.Config{
		GroupName:   "output",
		SizeInBytes: 10 * 1024 * 1024,
		Duration:    2 * time.Second,
	})

	srv := http.Server{
		Addr:              fmt.Sprintf("%s:%d", serveAddr, servePort),
		Handler:           gziphandler.GzipHandler(http.FileServer(http.FS(fsys))),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	// Graceful shutdown on interrupt.
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorw("shutdown", "error", err)
		}
	}()

	log.Infow("listening", "addr", srv.Addr, "dir", cfg.Paths.Output)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Infow("goodbye")
	return nil
}

// watchAndRebuild watches the content, templates, and static directories and
// re-runs a full build shortly after the last change. There is no
// incremental rebuild; the whole site is regenerated each time.
func watchAndRebuild(cfg site.Config) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Errorw("watch", "error", err)
		return
	}
	defer w.Close()

	for _, root := range []string{cfg.Paths.Content, cfg.Paths.Templates, cfg.Paths.Static} {
		if err := watchTree(w, root); err != nil {
			log.Debugw("not watching", "path", root, "error", err)
		}
	}
	log.Infow("watching for changes")

	// Debounce so a burst of events triggers one rebuild.
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					_ = w.Add(ev.Name)
				}
			}
			timer.Reset(300 * time.Millisecond)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Errorw("watch", "error", err)
		case <-timer.C:
			b, err := publish.New(cfg, log)
			if err == nil {
				err = b.Run()
			}
			if err != nil {
				log.Errorw("rebuild", "error", err)
			}
		}
	}
}

// watchTree adds root and all of its subdirectories to the watcher.
func watchTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8000, "Port to listen on")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Rebuild when content or templates change")
	rootCmd.AddCommand(serveCmd)
}
