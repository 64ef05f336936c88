package safeback

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/arthur-debert/safeback/pkg/safeback/core"
)

// IDGenerator produces an operation ID for diagnostic log correlation.
type IDGenerator func(action, name string) core.OperationID

var sequenceCounter atomic.Uint64

// UUIDIDGenerator tags each operation with a random ID. This is the
// default generator.
func UUIDIDGenerator(action, name string) core.OperationID {
	return core.OperationID(fmt.Sprintf("%s-%s", action, uuid.NewString()[:8]))
}

// HashIDGenerator derives IDs from the action and file name, so repeated
// operations on the same file share a stable prefix in logs.
func HashIDGenerator(action, name string) core.OperationID {
	h := sha256.New()
	h.Write([]byte(action))
	h.Write([]byte(name))
	digest := hex.EncodeToString(h.Sum(nil))[:8]
	return core.OperationID(fmt.Sprintf("%s-%s", action, digest))
}

// SequenceIDGenerator generates sequential IDs (useful for testing).
func SequenceIDGenerator(action, name string) core.OperationID {
	seq := sequenceCounter.Add(1)
	return core.OperationID(fmt.Sprintf("%s-%d", action, seq))
}

// ResetSequenceCounter resets the sequence counter (for testing).
func ResetSequenceCounter() {
	sequenceCounter.Store(0)
}
