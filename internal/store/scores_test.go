package store

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openTemp(t *testing.T) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	m, err := gdata.Open(gdata.Config{AppName: "charon_test"})
	if err != nil {
		t.Fatalf("open gdata: %v", err)
	}
	return m
}

func TestScoresPersistAcrossOpen(t *testing.T) {
	m := openTemp(t)
	s, err := New(m)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if s.Record() != (Record{}) {
		t.Fatalf("fresh store has record %+v", s.Record())
	}
	if err := s.Finish(12); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if err := s.Finish(5); err != nil {
		t.Fatalf("finish: %v", err)
	}

	again, err := New(m)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := again.Record(); got != (Record{Last: 5, Best: 12}) {
		t.Fatalf("reloaded record = %+v", got)
	}
}

func TestNilManagerIsMemoryOnly(t *testing.T) {
	s, err := New(nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Finish(3); err != nil {
		t.Fatalf("finish without manager: %v", err)
	}
	if s.Record().Best != 3 {
		t.Fatalf("record = %+v", s.Record())
	}
}

func TestCorruptRecordIsReported(t *testing.T) {
	m := openTemp(t)
	if err := m.SaveObjectProp(scoresObject, scoresProperty, []byte("last: [")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := New(m); err == nil {
		t.Fatal("expected decode error")
	}
}
