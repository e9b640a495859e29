// Shared helpers for depot CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/gladeworks/depot/internal/dirsource"
	"github.com/gladeworks/depot/internal/packsource"
	"github.com/gladeworks/depot/pkg/asset"
)

// mountInfo pairs a mount spec with the source built for it, for
// diagnostics output.
type mountInfo struct {
	Prefix   string `json:"prefix"`
	Type     string `json:"type"`
	Path     string `json:"path"`
	SourceID string `json:"source_id"`
}

// mountedRegistry is a registry with its config-declared sources attached,
// plus the teardown needed to release them.
type mountedRegistry struct {
	reg    *asset.Registry
	mounts []mountInfo
	closer func()
}

// openRegistry builds a registry from the config mount table. The caller
// must call the returned registry's closer when done.
func openRegistry() (*mountedRegistry, error) {
	assetDir, err := resolveAssetDir()
	if err != nil {
		return nil, fmt.Errorf("resolve asset dir: %w", err)
	}

	reg := asset.NewRegistry()
	mr := &mountedRegistry{reg: reg}

	var sources []*asset.Source
	var packs []*packsource.Pack
	mr.closer = func() {
		for _, s := range sources {
			s.Dispose()
		}
		for _, p := range packs {
			p.Close()
		}
	}

	for _, m := range mountSpecs {
		mountPath := m.Path
		if !filepath.IsAbs(mountPath) {
			mountPath = filepath.Join(assetDir, mountPath)
		}

		var loader asset.Loader
		switch m.Type {
		case mountTypeDir:
			dir, err := dirsource.New(mountPath)
			if err != nil {
				mr.closer()
				return nil, fmt.Errorf("mount %q: %w", m.Prefix, err)
			}
			loader = dir
		case mountTypePack:
			pack, err := packsource.Open(mountPath)
			if err != nil {
				mr.closer()
				return nil, fmt.Errorf("mount %q: %w", m.Prefix, err)
			}
			packs = append(packs, pack)
			loader = pack
		}

		src := asset.NewSource(reg, loader)
		if err := reg.RegisterSource(src, m.Prefix); err != nil {
			mr.closer()
			return nil, fmt.Errorf("mount %q: %w", m.Prefix, err)
		}
		sources = append(sources, src)

		mr.mounts = append(mr.mounts, mountInfo{
			Prefix:   m.Prefix,
			Type:     m.Type,
			Path:     mountPath,
			SourceID: src.ID(),
		})
	}

	return mr, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
