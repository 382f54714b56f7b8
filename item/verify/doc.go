// Package verify checks item records and reconstruction candidates.
//
// # Overview
//
// Reconstruction is the gate every edit passes through before it is returned
// to a caller. It re-parses the candidate bytes and compares them against the
// record they were derived from:
//   - Identity: type code, and GUID for extended items
//   - Layout: the property list starts at the same bit position
//   - Prefix and suffix: xxhash fingerprints of the bits before the property
//     list and after it are unchanged
//   - Content: the re-decoded property list equals the intended list
//
// Record checks a standalone record: byte alignment, trailing padding,
// sentinel placement and a write/parse round trip.
//
// # ValidationError
//
// All checks report a *ValidationError:
//
//	type ValidationError struct {
//	    Type    string         // check that failed (e.g., "Prefix")
//	    Message string         // human-readable description
//	    Offset  int            // bit position where the mismatch starts (-1 if N/A)
//	    Details map[string]any // additional context
//	}
//
// Reconstruction wraps it with ErrReconstructionFailed and Record wraps it
// with ErrInvalidRecord, so callers can branch with errors.Is and still
// extract the detail with errors.As:
//
//	if _, err := verify.Reconstruction(orig, data, parser, want); err != nil {
//	    var verr *verify.ValidationError
//	    if errors.As(err, &verr) {
//	        fmt.Printf("%s at bit %d\n", verr.Type, verr.Offset)
//	    }
//	}
package verify
