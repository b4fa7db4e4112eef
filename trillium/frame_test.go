// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trillium

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `Status,Species,Removal,Site,Citrulline,S-Adenosyl-L-methioninamine,Betaine
endemic,discolor,0.5,TB,10,1,100
widespread,cuneatum,0.25,PB,20,,5
endemic,discolor,0.5,TB,30,3,NA
widespread,catesbaei,0.75,TB,40,4,1
endemic,oostingii,0.1,JG,,5,
`

func load(t *testing.T) *Frame {
	t.Helper()
	f, err := Load(strings.NewReader(sample), Options{})
	require.NoError(t, err)
	return f
}

func TestLoad(t *testing.T) {
	f := load(t)
	require.Equal(t, 5, f.Len())
	require.Equal(t, []string{"Citrulline", "S-Adenosyl-L-methioninamine", "Betaine"}, f.Compounds())
	require.Len(t, f.Columns(), 7)

	sites, err := f.Strings(SiteColumn)
	require.NoError(t, err)
	require.Equal(t, []string{"TB", "PB", "TB", "TB", "JG"}, sites)

	cit, err := f.Floats("Citrulline")
	require.NoError(t, err)
	require.Equal(t, []float64{10, 20, 30, 40}, cit[:4])
	require.True(t, math.IsNaN(cit[4]))

	_, err = f.Floats("Species")
	require.ErrorIs(t, err, ErrNoColumn)
	_, err = f.Strings("nope")
	require.ErrorIs(t, err, ErrNoColumn)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(strings.NewReader(""), Options{})
	require.Error(t, err)

	_, err = Load(strings.NewReader("a,b\n"), Options{})
	require.ErrorContains(t, err, "at least 4")

	_, err = Load(strings.NewReader("a,b,c,d,x\n1,2,3,4,oops\n"), Options{})
	require.ErrorContains(t, err, `row 1, column "x"`)

	_, err = Load(strings.NewReader("a,b,c,d,x,x\n1,2,3,4,5,6\n"), Options{})
	require.ErrorContains(t, err, "duplicate")

	f, err := Load(strings.NewReader("\ufeffa,x\nfoo,1.5\n"), Options{Meta: 1})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "x"}, f.Columns())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trillium.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	f, err := LoadFile(path, Options{})
	require.NoError(t, err)
	require.Equal(t, 5, f.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"), Options{})
	require.Error(t, err)
}

func TestAddLocation(t *testing.T) {
	f := load(t)
	require.NoError(t, f.AddLocation(SiteColumn))
	locs, err := f.Strings(LocationColumn)
	require.NoError(t, err)
	require.Equal(t, []string{"Tilton Bridge", "Pocket Branch", "Tilton Bridge", "Tilton Bridge", "Jocassee Gorges"}, locs)

	require.ErrorContains(t, f.AddLocation(SiteColumn), "duplicate")

	bad, err := Load(strings.NewReader("Status,Species,Removal,Site,x\ne,s,1,XX,1\n"), Options{})
	require.NoError(t, err)
	require.ErrorContains(t, bad.AddLocation(SiteColumn), `unknown site code "XX"`)
}

func TestSites(t *testing.T) {
	require.Len(t, Sites, 7)
	for code, name := range Sites {
		got, ok := SiteCode(name)
		require.True(t, ok)
		require.Equal(t, code, got)
	}
	_, ok := LocationName("ZZ")
	require.False(t, ok)
}

func TestWhereGroupBy(t *testing.T) {
	f := load(t)
	require.NoError(t, f.AddLocation(SiteColumn))

	tb, err := f.Where(LocationColumn, "Tilton Bridge")
	require.NoError(t, err)
	require.Equal(t, 3, tb.Len())
	cit, _ := tb.Floats("Citrulline")
	require.Equal(t, []float64{10, 30, 40}, cit)

	none, err := f.Where(LocationColumn, "Cave")
	require.NoError(t, err)
	require.Equal(t, 0, none.Len())

	keys, groups, err := f.GroupBy(SiteColumn)
	require.NoError(t, err)
	require.Equal(t, []string{"TB", "PB", "JG"}, keys)
	require.Equal(t, 1, groups["PB"].Len())
	require.Equal(t, f.Columns(), groups["JG"].Columns())

	_, _, err = f.GroupBy("Citrulline")
	require.ErrorIs(t, err, ErrNoColumn)
}

func TestAddRowMax(t *testing.T) {
	f := load(t)
	require.NoError(t, f.AddRowMax())
	max, err := f.Floats(MaxColumn)
	require.NoError(t, err)
	require.Equal(t, []float64{100, 20, 30, 40, 5}, max)
	require.NotContains(t, f.Compounds(), MaxColumn)

	empty, err := Load(strings.NewReader("a,b,c,d,x,y\n1,2,3,4,,NA\n"), Options{})
	require.NoError(t, err)
	require.NoError(t, empty.AddRowMax())
	max, _ = empty.Floats(MaxColumn)
	require.True(t, math.IsNaN(max[0]))
}

func TestWriteCSV(t *testing.T) {
	f, err := Load(strings.NewReader("Status,Species,Removal,Site,x\ne,s,0.5,TB,1.5\nw,t,1,CA,\n"), Options{})
	require.NoError(t, err)
	require.NoError(t, f.AddLocation(SiteColumn))
	require.NoError(t, f.AddRowMax())

	var buf bytes.Buffer
	require.NoError(t, f.WriteCSV(&buf))
	require.Equal(t, "Status,Species,Removal,Site,Location,x,Max\n"+
		"e,s,0.5,TB,Tilton Bridge,1.5,1.5\n"+
		"w,t,1,CA,Cave,,\n", buf.String())
}

func TestWriteCSVReload(t *testing.T) {
	f := load(t)
	require.NoError(t, f.AddLocation(SiteColumn))
	require.NoError(t, f.AddRowMax())
	var buf bytes.Buffer
	require.NoError(t, f.WriteCSV(&buf))

	for _, opts := range []Options{{}, {Meta: 5}} {
		g, err := Load(bytes.NewReader(buf.Bytes()), opts)
		require.NoError(t, err)
		require.Equal(t, f.Columns(), g.Columns())
		require.Equal(t, f.Compounds(), g.Compounds())

		locs, err := g.Strings(LocationColumn)
		require.NoError(t, err)
		want, _ := f.Strings(LocationColumn)
		require.Equal(t, want, locs)

		max, err := g.Floats(MaxColumn)
		require.NoError(t, err)
		require.Equal(t, []float64{100, 20, 30, 40, 5}, max)

		var again bytes.Buffer
		require.NoError(t, g.WriteCSV(&again))
		require.Equal(t, buf.String(), again.String())
	}
}

func TestDropNaN(t *testing.T) {
	kept, dropped := DropNaN([]float64{1, math.NaN(), 2, math.NaN()})
	require.Equal(t, []float64{1, 2}, kept)
	require.Equal(t, 2, dropped)
}
