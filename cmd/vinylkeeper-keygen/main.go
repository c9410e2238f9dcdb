// Command vinylkeeper-keygen generates the RSA key pair the server signs
// session tokens with. Run it once per deployment and point
// VINYL_PRIVATE_KEY_PATH / VINYL_PUBLIC_KEY_PATH at the output.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/vinylkeeper/vinylkeeper/pkg/cryptox"
)

func main() {
	dir := flag.String("dir", "keys", "output directory for private.pem and public.pem")
	bits := flag.Int("bits", 2048, "RSA key size")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0o700); err != nil {
		log.Fatalf("create output directory: %v", err)
	}

	privPEM, pubPEM, err := cryptox.GenerateRSAKeyPair(*bits)
	if err != nil {
		log.Fatalf("generate key pair: %v", err)
	}

	privPath := filepath.Join(*dir, "private.pem")
	if err := os.WriteFile(privPath, privPEM, 0o600); err != nil {
		log.Fatalf("write private key: %v", err)
	}

	pubPath := filepath.Join(*dir, "public.pem")
	if err := os.WriteFile(pubPath, pubPEM, 0o644); err != nil {
		log.Fatalf("write public key: %v", err)
	}

	log.Printf("wrote %s and %s", privPath, pubPath)
}
