package state

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"errors"
	"hash/crc32"
	"os"
	"path/filepath"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/vinser/sbokena/internal/floor"
)

// State holds persistent data such as the current maze and best results.
type State struct {
	Seed      int64         `json:"seed"`       // Seed of the maze in play
	Width     int           `json:"width"`      // Maze width in cells
	Height    int           `json:"height"`     // Maze height in cells
	ShowExits bool          `json:"show_exits"` // Exits view toggled on
	Best      map[int64]int `json:"best"`       // Fewest steps per solved seed
}

// configDir is replaced in tests.
var configDir = os.UserConfigDir

var encryptionKey = generateKey()

// generateKey creates a 32-byte AES key from system-specific data.
func generateKey() []byte {
	appID, err := machineid.ProtectedID("sbokena")
	if err != nil {
		appID = "default-sbokena-id" // Fallback if machine ID fails
	}
	sum := sha256.Sum256([]byte(appID))
	return sum[:]
}

func New() *State {
	return &State{
		Seed:   time.Now().UnixNano(),
		Width:  floor.Width,
		Height: floor.Height,
		Best:   make(map[int64]int),
	}
}

// Record keeps steps as the best result for seed if it beats the previous one.
// It reports whether a new best was set.
func (s *State) Record(seed int64, steps int) bool {
	if s.Best == nil {
		s.Best = make(map[int64]int)
	}
	if best, ok := s.Best[seed]; ok && best <= steps {
		return false
	}
	s.Best[seed] = steps
	return true
}

// BestFor returns the fewest steps recorded for seed.
func (s *State) BestFor(seed int64) (int, bool) {
	best, ok := s.Best[seed]
	return best, ok
}

// RecordAndSave updates the best result and persists the state.
func (s *State) RecordAndSave(seed int64, steps int) (bool, error) {
	isBest := s.Record(seed, steps)
	return isBest, s.Save()
}

// Save persists the current state to an encrypted file with an integrity check.
func (s *State) Save() error {
	path, err := getSavePath()
	if err != nil {
		return err
	}

	// Serialize to JSON
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	// Prepend CRC32 checksum
	crc := crc32.ChecksumIEEE(raw)
	data := make([]byte, 4+len(raw))
	binary.LittleEndian.PutUint32(data[:4], crc)
	copy(data[4:], raw)

	// Encrypt
	encrypted, err := encrypt(data)
	if err != nil {
		return err
	}

	return os.WriteFile(path, encrypted, 0644)
}

// Load reads the state from disk, decrypts and verifies it.
// Anything unreadable yields a fresh state.
func Load() *State {
	s := &State{}

	path, err := getSavePath()
	if err != nil {
		return New()
	}

	encrypted, err := os.ReadFile(path)
	if err != nil {
		return New()
	}

	decrypted, err := decrypt(encrypted)
	if err != nil || len(decrypted) < 5 {
		return New()
	}

	crcStored := binary.LittleEndian.Uint32(decrypted[:4])
	payload := decrypted[4:]
	if crc32.ChecksumIEEE(payload) != crcStored {
		return New()
	}

	if err = json.Unmarshal(payload, s); err != nil {
		return New() // Corrupted JSON
	}
	if floor.ValidateSize(s.Width, s.Height) != nil {
		s.Width, s.Height = floor.Width, floor.Height
	}
	if s.Best == nil {
		s.Best = make(map[int64]int)
	}
	return s
}

// ======================
// 🔐 AES Encryption
// ======================

func encrypt(plain []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plain, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}
	return gcm.Open(nil, ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():], nil)
}

// getSavePath returns the path to the save file inside the user config directory.
func getSavePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	saveDir := filepath.Join(dir, "sbokena")
	if err := os.MkdirAll(saveDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(saveDir, "state.dat"), nil
}
