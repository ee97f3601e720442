package printer

import (
	"bytes"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Layout(t *testing.T) {
	d := NewDocument(32)
	d.Separator('=').
		Columns("cola", "6", "6,000").
		KeyValue("To pay", "4,000").
		Cut()

	out := d.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte{ESC, '@'}))
	assert.True(t, bytes.HasSuffix(out, []byte{GS, 'V', 0x00}))
	assert.Contains(t, string(out), "================================\n")
	assert.Contains(t, string(out), "cola            6          6,000\n")
	assert.Contains(t, string(out), "To pay                     4,000\n")
}

func TestDocument_TruncatesLongNames(t *testing.T) {
	d := NewDocument(32)
	d.Columns("extra large sparkling water", "1", "1,200")

	assert.Contains(t, string(d.Bytes()), "extra large spa 1          1,200\n")
}

func TestDocument_DefaultWidth(t *testing.T) {
	assert.Equal(t, DefaultWidth, NewDocument(0).Width())
	assert.Equal(t, 48, NewDocument(48).Width())
}

func TestNew(t *testing.T) {
	p, err := New(Config{Type: "none"})
	require.NoError(t, err)
	assert.False(t, p.IsConnected())
	assert.NoError(t, p.Print([]byte("x")))

	_, err = New(Config{Type: "usb"})
	assert.Error(t, err)
	_, err = New(Config{Type: "network"})
	assert.Error(t, err)
	_, err = New(Config{Type: "file"})
	assert.Error(t, err)
	_, err = New(Config{Type: "bluetooth"})
	assert.Error(t, err)
}

func TestFilePrinter_AppendsJobs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spool.bin")
	p, err := New(Config{Type: "file", Path: path})
	require.NoError(t, err)

	require.NoError(t, p.Print([]byte("first\n")))
	require.NoError(t, p.Print([]byte("second\n")))
	require.NoError(t, p.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestUSBPrinter_WritesDeviceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lp0")
	p := NewUSBPrinter(path)
	assert.False(t, p.IsConnected())

	require.NoError(t, os.WriteFile(path, nil, 0o644))
	assert.True(t, p.IsConnected())
	require.NoError(t, p.Print([]byte("receipt")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "receipt", string(data))
}

func TestNetworkPrinter_SendsJob(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	received := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(conn)
		received <- buf.Bytes()
	}()

	p := NewNetworkPrinter(ln.Addr().String())
	require.NoError(t, p.Print([]byte("receipt")))

	select {
	case data := <-received:
		assert.Equal(t, "receipt", string(data))
	case <-time.After(5 * time.Second):
		t.Fatal("printer job not received")
	}
}
