package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"

	gossh "golang.org/x/crypto/ssh"

	"sprite-gen/internal/masks"
	"sprite-gen/internal/server"
	"sprite-gen/internal/sprite"
)

const (
	defaultAddr = ":2222"
	hostKeyPath = "host_key"
	masksDir    = "assets/masks"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	verbose := flag.Bool("v", false, "log generator diagnostics")
	flag.Parse()
	if *verbose || os.Getenv("SPRITEGEN_DEBUG") != "" {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		sprite.SetLogger(slog.Default())
	}

	// Generate host key if it doesn't exist
	if err := ensureHostKey(hostKeyPath); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	templates := loadTemplates(masksDir)
	for _, m := range templates {
		log.Printf("Template loaded: %s (%dx%d)", m.Name, m.Width, m.Height)
	}

	// Start SSH server (blocks)
	listenAddr := defaultAddr
	if port := os.Getenv("PORT"); port != "" {
		listenAddr = ":" + port
	}
	sshServer := server.NewSSHServer(listenAddr, hostKeyPath, templates)
	log.Printf("Starting sprite preview, connect with: ssh -t -p %s localhost", listenAddr[1:])
	if err := sshServer.Start(); err != nil {
		log.Fatalf("SSH server error: %v", err)
	}
}

// loadTemplates returns the templates in dir sorted by name, or the
// built-in ship when none can be loaded.
func loadTemplates(dir string) []*masks.Mask {
	all, err := masks.LoadMasks(dir)
	if err != nil || len(all) == 0 {
		if err != nil {
			log.Printf("Could not load templates from %s: %v, using default template", dir, err)
		}
		return []*masks.Mask{masks.DefaultMask()}
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	templates := make([]*masks.Mask, len(names))
	for i, name := range names {
		templates[i] = all[name]
	}
	return templates
}

func ensureHostKey(path string) error {
	if data, err := os.ReadFile(path); err == nil {
		if _, err := gossh.ParsePrivateKey(data); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil // key already exists
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	pemBlock := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyBytes,
	}
	data := pem.EncodeToMemory(pemBlock)
	if _, err := gossh.ParsePrivateKey(data); err != nil {
		return fmt.Errorf("generated key: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
