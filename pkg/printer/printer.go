package printer

import (
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"
)

// Printer sends raw ESC/POS data to a receipt printer.
type Printer interface {
	Print(data []byte) error
	Close() error
	IsConnected() bool
}

// Config selects and addresses a printer
type Config struct {
	Type    string // usb, network, file, or none
	USBPath string
	Address string
	Path    string
}

// usbPrinter writes to a device file such as /dev/usb/lp0, opening it per job.
type usbPrinter struct {
	path string
}

// NewUSBPrinter creates a printer backed by a USB device file.
func NewUSBPrinter(devicePath string) Printer {
	return &usbPrinter{path: devicePath}
}

func (p *usbPrinter) Print(data []byte) error {
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: open USB device %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: write USB device %s: %w", p.path, err)
	}
	return nil
}

func (p *usbPrinter) Close() error { return nil }

func (p *usbPrinter) IsConnected() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

// networkPrinter dials a raw TCP port such as 192.168.1.100:9100 per job.
type networkPrinter struct {
	address string
	timeout time.Duration
}

// NewNetworkPrinter creates a printer reachable over TCP.
func NewNetworkPrinter(address string) Printer {
	return &networkPrinter{
		address: address,
		timeout: 5 * time.Second,
	}
}

func (p *networkPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, p.timeout)
	if err != nil {
		return fmt.Errorf("printer: connect %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(2 * p.timeout))
	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.address, err)
	}
	return nil
}

func (p *networkPrinter) Close() error { return nil }

func (p *networkPrinter) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", p.address, 2*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// writerPrinter appends every job to an io.Writer, e.g. a spool file.
type writerPrinter struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
}

// NewWriterPrinter creates a printer that writes jobs to w.
func NewWriterPrinter(w io.Writer) Printer {
	p := &writerPrinter{w: w}
	if c, ok := w.(io.Closer); ok {
		p.closer = c
	}
	return p
}

// NewFilePrinter creates a printer that appends jobs to the file at path.
func NewFilePrinter(path string) (Printer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("printer: open spool file %s: %w", path, err)
	}
	return NewWriterPrinter(f), nil
}

func (p *writerPrinter) Print(data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, err := p.w.Write(data); err != nil {
		return fmt.Errorf("printer: write: %w", err)
	}
	return nil
}

func (p *writerPrinter) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}

func (p *writerPrinter) IsConnected() bool { return true }

// nullPrinter discards every job.
type nullPrinter struct{}

// NewNullPrinter creates a printer for kiosks without hardware.
func NewNullPrinter() Printer {
	return &nullPrinter{}
}

func (p *nullPrinter) Print([]byte) error { return nil }
func (p *nullPrinter) Close() error       { return nil }
func (p *nullPrinter) IsConnected() bool  { return false }

// New creates the Printer described by cfg.
func New(cfg Config) (Printer, error) {
	switch cfg.Type {
	case "usb":
		if cfg.USBPath == "" {
			return nil, fmt.Errorf("printer: USB path is required for USB printer type")
		}
		return NewUSBPrinter(cfg.USBPath), nil
	case "network":
		if cfg.Address == "" {
			return nil, fmt.Errorf("printer: address is required for network printer type")
		}
		return NewNetworkPrinter(cfg.Address), nil
	case "file":
		if cfg.Path == "" {
			return nil, fmt.Errorf("printer: path is required for file printer type")
		}
		return NewFilePrinter(cfg.Path)
	case "none", "":
		return NewNullPrinter(), nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q (use usb, network, file, or none)", cfg.Type)
	}
}
