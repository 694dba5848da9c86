package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/odvcencio/maestro/internal/fixtures"
)

var later = time.Now().Add(time.Hour)

func TestConnectionStoreOverlaysPerSession(t *testing.T) {
	store := NewConnectionStore()
	repos := fixtures.Dataset().Repos

	store.SetRepo("alice", later, "r1", false)
	store.SetRepo("alice", later, "r6", true)

	alice := store.Repos("alice", repos)
	if alice[0].Connected || !alice[5].Connected {
		t.Fatalf("alice overlay not applied: r1=%v r6=%v", alice[0].Connected, alice[5].Connected)
	}
	bob := store.Repos("bob", repos)
	if !bob[0].Connected || bob[5].Connected {
		t.Fatalf("bob sees alice's toggles: r1=%v r6=%v", bob[0].Connected, bob[5].Connected)
	}
	if !repos[0].Connected {
		t.Fatal("input repos mutated by overlay")
	}
	if got := store.Repo("alice", repos[0]); got.Connected {
		t.Fatal("Repo(alice, r1).Connected = true, want false")
	}

	store.Discard("alice")
	if after := store.Repos("alice", repos); !after[0].Connected {
		t.Fatal("Discard did not drop alice's toggles")
	}
}

func TestConnectionStoreConnectors(t *testing.T) {
	store := NewConnectionStore()
	connectors := fixtures.Connectors()

	store.SetConnector("s1", later, "aws", true)
	store.SetConnector("s1", later, "jira", false)

	got := store.Connectors("s1", connectors)
	if !got[0].Connected || got[1].Connected {
		t.Fatalf("connector overlay = aws:%v jira:%v, want true/false", got[0].Connected, got[1].Connected)
	}
	if connectors[0].Connected {
		t.Fatal("input connectors mutated by overlay")
	}
}

func TestConnectionStoreConcurrentSessions(t *testing.T) {
	store := NewConnectionStore()
	repos := fixtures.Dataset().Repos

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			session := fmt.Sprintf("s%d", i)
			store.SetRepo(session, later, "r7", i%2 == 0)
			_ = store.Repos(session, repos)
			store.Discard(session)
		}(i)
	}
	wg.Wait()
}

func TestConnectionStorePrunesExpiredSessions(t *testing.T) {
	store := NewConnectionStore()
	now := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)
	store.clock = func() time.Time { return now }
	repos := fixtures.Dataset().Repos

	store.SetRepo("short", now.Add(time.Minute), "r1", false)
	store.SetConnector("long", now.Add(time.Hour), "aws", true)
	if !store.Has("short") || !store.Has("long") {
		t.Fatal("overlays missing right after Set")
	}

	now = now.Add(2 * time.Minute)
	store.SetRepo("fresh", now.Add(time.Hour), "r7", true)

	if store.Has("short") {
		t.Fatal("expired session overlay survived the next Set")
	}
	if got := store.Repos("short", repos); !got[0].Connected {
		t.Fatal("expired session still sees its r1 toggle")
	}
	if !store.Has("long") || !store.Has("fresh") {
		t.Fatal("live overlays pruned")
	}
	if len(store.sessions) != 2 {
		t.Fatalf("len(sessions) = %d, want 2", len(store.sessions))
	}
}

func TestConnectionStoreSetExtendsExpiry(t *testing.T) {
	store := NewConnectionStore()
	now := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)
	store.clock = func() time.Time { return now }

	store.SetRepo("s1", now.Add(time.Minute), "r1", false)
	store.SetRepo("s1", now.Add(time.Hour), "r2", false)
	now = now.Add(2 * time.Minute)
	store.SetRepo("s2", now.Add(time.Hour), "r1", true)

	if !store.Has("s1") {
		t.Fatal("overlay with a refreshed expiry was pruned")
	}
}
