package tui

import "context"

// RenderOnce loads the configured country synchronously and rasterizes
// a single frame at the given cell dimensions. Used by the headless
// CLI mode; no program loop is started.
func RenderOnce(ctx context.Context, opts Options, width, height int) (string, error) {
	fc, err := opts.Loader.Load(ctx, opts.FormData.Country)
	if err != nil {
		return "", err
	}
	m := New(opts)
	// width/height are the canvas cell dimensions, no chrome around them
	m.mapW = width
	m.mapH = height
	m.fc = fc
	m.rebuildScene()
	return m.renderScene(), nil
}
