package leafseed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"
)

// FetchTable downloads a table from any go-getter source (local path,
// http(s)://, git::, s3::, gcs:: ...) and parses it.
func FetchTable(ctx context.Context, src string) ([]Signature, error) {
	dir, err := os.MkdirTemp("", "leafseed-table-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	pwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working dir: %w", err)
	}

	dst := filepath.Join(dir, "table.txt")
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		return nil, fmt.Errorf("fetch table %s: %w", src, err)
	}

	return LoadTable(dst)
}
