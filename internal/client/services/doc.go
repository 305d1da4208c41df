// Package services contains the application services behind the CryptoNote
// CLI.
//
// AuthService owns the stored password verifier. The verifier (salt||hash) is
// sealed under a dedicated integrity key before it reaches the settings
// store, so editing the database outside the application makes every login
// fail with ErrCredentialCorrupted instead of letting a forged verifier in.
//
// NoteCipher seals and opens individual note fields under the note key.
// NoteService drives the note lifecycle on top of it and the notes
// repository; plaintext never reaches the database.
//
// Password mismatches are reported as (false, nil). Structural failures are
// typed errors; the CLI decides how much of them the user sees.
package services
