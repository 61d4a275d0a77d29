package sensor

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"levelkit.klederson.com/internal/config"
	"tinygo.org/x/bluetooth"
)

// BLESource subscribes to a GATT characteristic that notifies
// accelerometer samples as little-endian float32 axes.
type BLESource struct {
	adapter *bluetooth.Adapter
	cfg     config.BLE
	service bluetooth.UUID
	char    bluetooth.UUID
	program Sender

	mu        sync.Mutex
	running   bool
	device    bluetooth.Device
	connected bool
}

// NewBLESource validates cfg and creates a source on the default adapter.
func NewBLESource(cfg config.BLE) (*BLESource, error) {
	if cfg.Name == "" && cfg.Address == "" {
		return nil, errors.New("ble source needs a peripheral name or address")
	}
	service, err := bluetooth.ParseUUID(cfg.Service)
	if err != nil {
		return nil, fmt.Errorf("ble service uuid %q: %w", cfg.Service, err)
	}
	char, err := bluetooth.ParseUUID(cfg.Characteristic)
	if err != nil {
		return nil, fmt.Errorf("ble characteristic uuid %q: %w", cfg.Characteristic, err)
	}
	return &BLESource{
		adapter: bluetooth.DefaultAdapter,
		cfg:     cfg,
		service: service,
		char:    char,
	}, nil
}

func (s *BLESource) Name() string {
	if s.cfg.Name != "" {
		return "ble " + s.cfg.Name
	}
	return "ble " + s.cfg.Address
}

// Start enables the adapter, then finds and subscribes to the peripheral
// in a goroutine.
func (s *BLESource) Start(p Sender) error {
	s.program = p

	if err := s.adapter.Enable(); err != nil {
		return fmt.Errorf("failed to enable BLE adapter: %w (try running with sudo or setcap cap_net_admin+ep)", err)
	}

	s.mu.Lock()
	s.running = true
	s.mu.Unlock()

	go func() {
		if err := s.run(); err != nil {
			s.program.Send(ErrorMsg{Err: err})
		}
	}()
	return nil
}

func (s *BLESource) run() error {
	found := make(chan bluetooth.ScanResult, 1)
	timeout := time.AfterFunc(config.BLEScanWindow, func() {
		_ = s.adapter.StopScan()
	})
	err := s.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
		if !s.matches(result) {
			return
		}
		select {
		case found <- result:
		default:
		}
		_ = adapter.StopScan()
	})
	timeout.Stop()
	if err != nil {
		return fmt.Errorf("ble scan: %w", err)
	}

	var result bluetooth.ScanResult
	select {
	case result = <-found:
	default:
		return fmt.Errorf("ble: %s not found within %s", s.Name(), config.BLEScanWindow)
	}
	if !s.isRunning() {
		return nil
	}

	device, err := s.adapter.Connect(result.Address, bluetooth.ConnectionParams{})
	if err != nil {
		return fmt.Errorf("ble connect %s: %w", result.Address.String(), err)
	}
	s.mu.Lock()
	s.device = device
	s.connected = true
	s.mu.Unlock()

	services, err := device.DiscoverServices([]bluetooth.UUID{s.service})
	if err != nil {
		return fmt.Errorf("ble discover services: %w", err)
	}
	if len(services) == 0 {
		return fmt.Errorf("ble service %s not found", s.service.String())
	}
	chars, err := services[0].DiscoverCharacteristics([]bluetooth.UUID{s.char})
	if err != nil {
		return fmt.Errorf("ble discover characteristics: %w", err)
	}
	if len(chars) == 0 {
		return fmt.Errorf("ble characteristic %s not found", s.char.String())
	}

	log.Printf("ble: subscribed to %s on %s", s.char.String(), result.Address.String())
	return chars[0].EnableNotifications(func(buf []byte) {
		if !s.isRunning() {
			return
		}
		reading, err := DecodeFloat32LE(buf)
		if err != nil {
			log.Printf("ble: %v", err)
			return
		}
		s.program.Send(ReadingMsg{Reading: reading, At: time.Now()})
	})
}

func (s *BLESource) matches(result bluetooth.ScanResult) bool {
	if s.cfg.Address != "" {
		return strings.EqualFold(result.Address.String(), s.cfg.Address)
	}
	return result.LocalName() == s.cfg.Name
}

func (s *BLESource) isRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Stop halts scanning and drops the connection.
func (s *BLESource) Stop() {
	s.mu.Lock()
	s.running = false
	device, connected := s.device, s.connected
	s.connected = false
	s.mu.Unlock()

	_ = s.adapter.StopScan()
	if connected {
		_ = device.Disconnect()
	}
}
