/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

package probe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muream/mayapy-launcher/pkg/install"
)

// fakeStore is an install.Store backed by a fixed release list.
type fakeStore struct {
	releases []install.Release
	err      error
	calls    int
}

func (f *fakeStore) Releases(_ context.Context) ([]install.Release, error) {
	f.calls++
	return f.releases, f.err
}

func (f *fakeStore) InstallPath(_ context.Context, _ install.Release) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeStore) Mayapy(_ context.Context, _ install.Release) (string, error) {
	return "", errors.New("not implemented")
}

func TestMayaPinProbeFindsNearestPin(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "rigs")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	writePin(t, root, PinFileMaya, "2020\n")
	writePin(t, nested, PinFileMaya, "2023\n")

	r, err := MayaPinProbe{StartDir: nested}.Detect(t.Context())
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, install.Release(2023), *r)
}

func TestMayaPinProbeNoPin(t *testing.T) {
	r, err := MayaPinProbe{StartDir: t.TempDir()}.Detect(t.Context())
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestMayaPinProbeMalformedPin(t *testing.T) {
	dir := t.TempDir()
	writePin(t, dir, PinFileMaya, "twenty-twenty-three\n")

	_, err := MayaPinProbe{StartDir: dir}.Detect(t.Context())
	require.Error(t, err)
}

func TestMayaPinProbeCommentLineIsThePin(t *testing.T) {
	dir := t.TempDir()
	writePin(t, dir, PinFileMaya, "# 2020 until the farm upgrade\n2023\n")

	// The commented line is the first non-empty line, so it is the pin; the
	// valid release below it must not be picked up instead.
	_, err := MayaPinProbe{StartDir: dir}.Detect(t.Context())
	require.Error(t, err)
}

func TestLatestInstalledProbe(t *testing.T) {
	store := &fakeStore{releases: []install.Release{2019, 2023, 2020}}

	r, err := LatestInstalledProbe{Store: store}.Detect(t.Context())
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, install.Release(2023), *r)
}

func TestLatestInstalledProbeNothingInstalled(t *testing.T) {
	store := &fakeStore{}

	_, err := LatestInstalledProbe{Store: store}.Detect(t.Context())
	require.Error(t, err)
}

func TestLatestInstalledProbeStoreError(t *testing.T) {
	storeErr := errors.New("scan failed")
	store := &fakeStore{err: storeErr}

	_, err := LatestInstalledProbe{Store: store}.Detect(t.Context())
	assert.ErrorIs(t, err, storeErr)
}
