package config

import (
	"io"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, want %+v", cfg, Default())
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse([]string{
		"-width", "640", "-height", "480",
		"-rate", "1.5", "-angle", "0.25",
		"-shape", "sphere", "-size", "2",
		"-vsync=false", "-report=false",
		"-snapshot", "out.png",
	}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Width: 640, Height: 480,
		Rate: 1.5, Angle: 0.25,
		Shape: "sphere", Size: 2,
		Snapshot: "out.png",
	}
	if cfg != want {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
}

func TestParseErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-width", "0"},
		{"-size", "-1"},
		{"-shape", "teapot"},
		{"-nope"},
		{"extra"},
	} {
		if _, err := Parse(args, io.Discard); err == nil {
			t.Fatalf("Parse(%q) succeeded", args)
		}
	}
}
