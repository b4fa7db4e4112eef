// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/aclements/go-trillium/bayes"
	"github.com/stretchr/testify/require"
)

const data = `Status,Species,Removal,Site,Citrulline,S-Adenosyl-L-methioninamine,Betaine
endemic,discolor,0.5,TB,10,1,100
widespread,cuneatum,0.25,PB,20,2,5
endemic,discolor,0.5,TB,30,3,NA
widespread,catesbaei,0.75,TB,40,4,1
endemic,oostingii,0.1,JG,,5,2
widespread,cuneatum,0.3,CA,60,6,7
`

func writeData(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trillium.csv")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestAveragesStdin(t *testing.T) {
	out, err := run(t, "6\n1\n\n5\n2\n4\n3\n", "averages")
	require.NoError(t, err)
	require.Equal(t, "2\n5\n", out)

	out, err = run(t, "6\n1\n5\n2\n4\n", "averages")
	require.NoError(t, err)
	require.Equal(t, strconv.FormatFloat(7.0/3, 'g', -1, 64)+"\n5.5\n", out)

	out, err = run(t, "", "averages")
	require.NoError(t, err)
	require.Empty(t, out)

	_, err = run(t, "1\nx\n", "averages")
	require.ErrorContains(t, err, "line 2")

	_, err = run(t, "1\nNaN\n", "averages")
	require.Error(t, err)

	out, err = run(t, "1\n2\n3\n4\n", "averages", "--size", "2")
	require.NoError(t, err)
	require.Equal(t, "1.5\n3.5\n", out)

	_, err = run(t, "1\n", "averages", "--size", "0")
	require.Error(t, err)
}

func TestAveragesColumn(t *testing.T) {
	path := writeData(t)

	out, err := run(t, "", "averages", "--data", path, "--column", "Citrulline", "--location", "Tilton Bridge")
	require.NoError(t, err)
	require.Equal(t, strconv.FormatFloat(80.0/3, 'g', -1, 64)+"\n", out)

	byCode, err := run(t, "", "averages", "--data", path, "--column", "Citrulline", "--location", "TB")
	require.NoError(t, err)
	require.Equal(t, out, byCode)

	// The missing Jocassee Gorges value is dropped.
	out, err = run(t, "", "averages", "--data", path, "--column", "Citrulline")
	require.NoError(t, err)
	require.Equal(t, "20\n50\n", out)

	_, err = run(t, "", "averages", "--data", path, "--column", "Citrulline", "--location", "Atlantis")
	require.ErrorContains(t, err, "unknown location")
	_, err = run(t, "", "averages", "--location", "TB")
	require.ErrorContains(t, err, "--column")
	_, err = run(t, "", "averages", "--data", path, "--column", "Nope")
	require.Error(t, err)
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "1\n2\n3\n4\n", "describe")
	require.NoError(t, err)
	require.Contains(t, out, "N 4  sum 10  mean 2.5")
	require.Contains(t, out, "     min 1\n")
	require.Contains(t, out, "     max 4\n")

	_, err = run(t, "", "describe")
	require.Error(t, err)
}

func TestAugment(t *testing.T) {
	path := writeData(t)
	out, err := run(t, "", "augment", "--data", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	require.Equal(t, "Status,Species,Removal,Site,Location,Citrulline,S-Adenosyl-L-methioninamine,Betaine,Max", lines[0])
	require.Equal(t, "endemic,discolor,0.5,TB,Tilton Bridge,10,1,100,100", lines[1])
	require.Equal(t, "widespread,cuneatum,0.3,CA,Cave,60,6,7,60", lines[6])

	outPath := filepath.Join(t.TempDir(), "augmented.csv")
	_, err = run(t, "", "augment", "--data", path, "-o", outPath)
	require.NoError(t, err)
	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, out, string(written))

	// Augmented output is valid input.
	again, err := run(t, "", "augment", "--data", outPath)
	require.NoError(t, err)
	require.Equal(t, out, again)

	avg, err := run(t, "", "averages", "--data", outPath, "--column", "Citrulline", "--location", "Cave")
	require.NoError(t, err)
	require.Equal(t, "60\n", avg)
}

func TestPlots(t *testing.T) {
	path := writeData(t)
	dir := t.TempDir()

	hist := filepath.Join(dir, "hist.png")
	_, err := run(t, "", "hist", "--data", path, "-o", hist)
	require.NoError(t, err)
	require.FileExists(t, hist)

	scatter := filepath.Join(dir, "scatter.png")
	_, err = run(t, "", "scatter", "--data", path, "-o", scatter)
	require.NoError(t, err)
	require.FileExists(t, scatter)

	_, err = run(t, "", "hist", "--data", path, "--column", "Nope", "-o", hist)
	require.Error(t, err)
}

func TestRegress(t *testing.T) {
	path := writeData(t)
	dir := filepath.Join(t.TempDir(), "posterior")

	out, err := run(t, "", "regress", "--data", path, "--draws", "200", "--chains", "2", "--seed", "3", "-o", dir)
	require.NoError(t, err)
	for _, p := range []string{"alpha", "beta", "gamma"} {
		require.Contains(t, out, p)
		require.FileExists(t, filepath.Join(dir, p+".png"))
	}

	again, err := run(t, "", "regress", "--data", path, "--draws", "200", "--chains", "2", "--seed", "3")
	require.NoError(t, err)
	require.Equal(t, out, again)
}

func TestRegressHDI(t *testing.T) {
	path := writeData(t)
	for _, mass := range []string{"0", "-0.5", "94", "NaN"} {
		t.Setenv("TRILLIUM_SAMPLER_HDI", mass)
		_, err := run(t, "", "regress", "--data", path, "--draws", "10", "--chains", "1")
		require.ErrorContains(t, err, "sampler.hdi", "mass %s", mass)
	}

	t.Setenv("TRILLIUM_SAMPLER_HDI", "1")
	_, err := run(t, "", "regress", "--data", path, "--draws", "10", "--chains", "1")
	require.NoError(t, err)

	cfg := filepath.Join(t.TempDir(), "trillium.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("sampler:\n  hdi: 94\n"), 0o644))
	t.Setenv("TRILLIUM_SAMPLER_HDI", "")
	_, err = run(t, "", "regress", "--config", cfg, "--data", path, "--draws", "10", "--chains", "1")
	require.ErrorContains(t, err, "sampler.hdi")
}

func TestDefaults(t *testing.T) {
	a := newApp()
	require.Equal(t, bayes.DefaultDraws, a.v.GetInt(keyDraws))
	require.Equal(t, bayes.DefaultTune, a.v.GetInt(keyTune))
	require.Equal(t, bayes.DefaultChains, a.v.GetInt(keyChains))
	require.Equal(t, bayes.DefaultHDI, a.v.GetFloat64(keyHDI))

	flags := a.regressCmd().Flags()
	draws, err := flags.GetInt("draws")
	require.NoError(t, err)
	require.Equal(t, bayes.DefaultDraws, draws)
	chains, err := flags.GetInt("chains")
	require.NoError(t, err)
	require.Equal(t, bayes.DefaultChains, chains)
}

func TestConfigFile(t *testing.T) {
	path := writeData(t)
	cfg := filepath.Join(t.TempDir(), "trillium.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("data: "+path+"\n"), 0o644))

	out, err := run(t, "", "averages", "--config", cfg, "--column", "Citrulline", "--location", "CA")
	require.NoError(t, err)
	require.Equal(t, "60\n", out)

	_, err = run(t, "", "averages", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
