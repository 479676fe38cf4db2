package redis

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestKV(t *testing.T) (*KV, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client, ""), mr
}

func TestKVSetGetDelete(t *testing.T) {
	kv, mr := newTestKV(t)
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "user"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v", ok, err)
	}

	if err := kv.Set(ctx, "user", `{"name":"Арман"}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !mr.Exists("bilim:user") {
		t.Fatal("expected prefixed redis key to be set")
	}
	got, err := mr.Get("bilim:user")
	if err != nil || got != `{"name":"Арман"}` {
		t.Fatalf("raw value = %q, %v", got, err)
	}

	v, ok, err := kv.Get(ctx, "user")
	if err != nil || !ok || v != `{"name":"Арман"}` {
		t.Fatalf("Get = %q, %v, %v", v, ok, err)
	}

	if err := kv.Delete(ctx, "user"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if mr.Exists("bilim:user") {
		t.Fatal("expected redis key to be removed")
	}
}

func TestKVCustomPrefix(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	kv := New(client, "device42:")

	if err := kv.Set(context.Background(), "language", "en"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !mr.Exists("device42:language") {
		t.Fatal("expected custom prefix to be used")
	}
}

func TestDial(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	addr := mr.Addr()

	kv, err := Dial(context.Background(), addr)
	if err != nil {
		mr.Close()
		t.Fatalf("dial: %v", err)
	}
	kv.Close()

	mr.Close()
	if _, err := Dial(context.Background(), addr); err == nil {
		t.Fatal("expected dial to fail once the server is gone")
	}
}
