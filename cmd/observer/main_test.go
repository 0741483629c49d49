package main

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boswachter/observations/router"
	"github.com/boswachter/observations/testutil"
)

func TestRun_LoginSubmitList(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	srv := httptest.NewServer(router.NewRouter(conn, testutil.GetTestConfig()))
	defer srv.Close()

	dir := t.TempDir()
	image := filepath.Join(dir, "wolf.jpg")
	require.NoError(t, os.WriteFile(image, []byte{0xff, 0xd8}, 0o600))
	global := []string{"-server", srv.URL, "-identity", filepath.Join(dir, "identity.json")}

	var out bytes.Buffer
	require.NoError(t, run(t.Context(), append(global, "login", "ranger1"), &out))
	assert.Contains(t, out.String(), "Logged in as ranger1")

	out.Reset()
	require.NoError(t, run(t.Context(), append(global, "submit",
		"-image", image, "-taken", "2024-06-10T06:30:00Z", "-gps", "52.0907, 5.1214",
		"-species", "Wolf", "-count", "2", "-gender", "Mannelijk", "-age", "Volwassen",
	), &out))
	assert.Contains(t, out.String(), "Submitted observation #1: 2 Wolf")

	out.Reset()
	require.NoError(t, run(t.Context(), append(global, "list"), &out))
	assert.Contains(t, out.String(), "#1  Wolf x2  Mannelijk/Volwassen  by ranger1")
	assert.Contains(t, out.String(), "@ 52.0907, 5.1214")
	assert.Contains(t, out.String(), "1 observations")
}

func TestRun_SubmitWithoutImageCancels(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	err := run(t.Context(), []string{"-server", "http://127.0.0.1:1", "-identity", filepath.Join(dir, "id.json"), "submit"}, &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "No image selected")
}

func TestRun_SubmitMissingFields(t *testing.T) {
	dir := t.TempDir()
	image := filepath.Join(dir, "ree.jpg")
	require.NoError(t, os.WriteFile(image, []byte{0xff}, 0o600))

	var out bytes.Buffer
	err := run(t.Context(), []string{
		"-server", "http://127.0.0.1:1", "-identity", filepath.Join(dir, "id.json"),
		"submit", "-image", image, "-species", "Ree",
	}, &out)

	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(err.Error(), "missing required field"), err.Error())
	assert.Contains(t, out.String(), "Warning: could not determine location")
}

func TestRun_ListUnreachable(t *testing.T) {
	var out bytes.Buffer
	err := run(t.Context(), []string{"-server", "http://127.0.0.1:1", "-identity", filepath.Join(t.TempDir(), "id.json"), "list"}, &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error fetching data")
}

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(t.Context(), []string{"-identity", filepath.Join(t.TempDir(), "id.json")}, &out))
	assert.Contains(t, out.String(), "usage: observer")

	out.Reset()
	assert.Error(t, run(t.Context(), []string{"-identity", filepath.Join(t.TempDir(), "id.json"), "dance"}, &out))
	assert.Contains(t, out.String(), "commands:")
}

func TestParseCoordinate(t *testing.T) {
	c, err := parseCoordinate(" 52.5, -1.25 ")
	require.NoError(t, err)
	assert.Equal(t, 52.5, c.Lat)
	assert.Equal(t, -1.25, c.Lon)

	for _, bad := range []string{"", "52.5", "north, east", "91, 0", "0, 181"} {
		_, err := parseCoordinate(bad)
		assert.Error(t, err, bad)
	}
}
