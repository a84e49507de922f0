package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates and parses group invite QR codes.
type QRCodeService interface {
	// GenerateGroupInviteQR generates a QR code PNG encoding a group invite.
	GenerateGroupInviteQR(groupID uuid.UUID) ([]byte, error)

	// ParseGroupInviteQR parses invite QR data and returns the group ID.
	ParseGroupInviteQR(qrData string) (uuid.UUID, error)
}
