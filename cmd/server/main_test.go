package main

import (
	"net"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func newQuietApp() *fiber.App {
	return fiber.New(fiber.Config{DisableStartupMessage: true})
}

func TestServeReturnsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	done := make(chan error, 1)
	go func() {
		done <- serve(newQuietApp(), ln.Addr().String(), make(chan os.Signal))
	}()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected an error for a port already in use")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after Listen failed")
	}
}

func TestServeStopsOnSignal(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	ln.Close()

	quit := make(chan os.Signal, 1)
	done := make(chan error, 1)
	go func() {
		done <- serve(newQuietApp(), addr, quit)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for {
		conn, err := net.Dial("tcp", addr)
		if err == nil {
			conn.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server never started: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	quit <- syscall.SIGTERM
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected a clean stop, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after the signal")
	}
}
