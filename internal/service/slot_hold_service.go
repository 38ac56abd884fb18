package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrSlotHeld is returned when another patient already holds the slot
var ErrSlotHeld = errors.New("time slot is already held")

// releaseHoldScript releases a hold only when the requesting patient owns
// it. The Redis client switches to EVALSHA automatically after the first
// call, so the script text travels once.
var releaseHoldScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

const (
	// Redis key prefix for consultation slot holds
	slotHoldKeyPrefix = "consult:slot:hold:"

	// Holds expire on their own so a crashed booking flow cannot leak a
	// slot forever.
	slotHoldTTL = 5 * time.Minute
)

// SlotHoldService serializes concurrent bookings of the same time slot
// through Redis, so thousands of patients racing for one slot never reach
// the database lock.
type SlotHoldService struct {
	log         *logrus.Logger
	redisClient *redis.Client
}

func NewSlotHoldService(log *logrus.Logger, redisClient *redis.Client) *SlotHoldService {
	return &SlotHoldService{
		log:         log,
		redisClient: redisClient,
	}
}

func slotHoldKey(timeSlotID uuid.UUID) string {
	return fmt.Sprintf("%s%s", slotHoldKeyPrefix, timeSlotID)
}

// Acquire atomically claims the slot for the patient. Returns ErrSlotHeld
// when another patient got there first.
func (s *SlotHoldService) Acquire(ctx context.Context, timeSlotID, patientID uuid.UUID) error {
	ok, err := s.redisClient.SetNX(ctx, slotHoldKey(timeSlotID), patientID.String(), slotHoldTTL).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrSlotHeld
	}
	return nil
}

// Release frees the hold if the patient still owns it. Used both to
// compensate a failed booking insert and to reopen a slot after
// cancellation.
func (s *SlotHoldService) Release(ctx context.Context, timeSlotID, patientID uuid.UUID) error {
	return releaseHoldScript.Run(ctx, s.redisClient, []string{slotHoldKey(timeSlotID)}, patientID.String()).Err()
}
