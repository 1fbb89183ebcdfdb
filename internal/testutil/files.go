package testutil

import (
	"io"
	"os"
	"testing"
)

// CloneOrCopy duplicates src to dst, preferring a copy-on-write clone when the
// platform supports it and falling back to a byte copy.
func CloneOrCopy(t testing.TB, src, dst string) {
	t.Helper()
	if err := cloneFile(src, dst); err == nil {
		return
	}
	in, err := os.Open(src)
	if err != nil {
		t.Fatalf("open %s: %v", src, err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		t.Fatalf("create %s: %v", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		t.Fatalf("copy %s: %v", dst, err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("close %s: %v", dst, err)
	}
}
