// Package vaultpb is the wire contract of the vault gRPC service: request and
// response messages, the service descriptor and a typed client.
//
// Messages use the protobuf binary encoding described by vault.proto, so any
// stock gRPC client can call the service. The file descriptor is registered
// with the global protobuf registry, which makes the service visible to
// server reflection.
package vaultpb

import "encoding/json"

type InitializeFeePoolRequest struct {
	Initializer string
	Asset       string
}

func (m *InitializeFeePoolRequest) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.Initializer)
	return appendString(b, 2, m.Asset)
}

func (m *InitializeFeePoolRequest) unmarshalWire(b []byte) error {
	*m = InitializeFeePoolRequest{}
	d := decoder{b: b}
	for {
		ok, err := d.next()
		if !ok || err != nil {
			return err
		}
		switch d.num {
		case 1:
			m.Initializer, err = d.readString()
		case 2:
			m.Asset, err = d.readString()
		default:
			err = d.skip()
		}
		if err != nil {
			return err
		}
	}
}

type ProvisionRequest struct {
	User  string
	Asset string
}

func (m *ProvisionRequest) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.User)
	return appendString(b, 2, m.Asset)
}

func (m *ProvisionRequest) unmarshalWire(b []byte) error {
	*m = ProvisionRequest{}
	d := decoder{b: b}
	for {
		ok, err := d.next()
		if !ok || err != nil {
			return err
		}
		switch d.num {
		case 1:
			m.User, err = d.readString()
		case 2:
			m.Asset, err = d.readString()
		default:
			err = d.skip()
		}
		if err != nil {
			return err
		}
	}
}

type DepositRequest struct {
	User       string
	LockPeriod uint64
	Amount     uint64
}

func (m *DepositRequest) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.User)
	b = appendUint64(b, 2, m.LockPeriod)
	return appendUint64(b, 3, m.Amount)
}

func (m *DepositRequest) unmarshalWire(b []byte) error {
	*m = DepositRequest{}
	d := decoder{b: b}
	for {
		ok, err := d.next()
		if !ok || err != nil {
			return err
		}
		switch d.num {
		case 1:
			m.User, err = d.readString()
		case 2:
			m.LockPeriod, err = d.readUint64()
		case 3:
			m.Amount, err = d.readUint64()
		default:
			err = d.skip()
		}
		if err != nil {
			return err
		}
	}
}

type ExtendRequest struct {
	User         string
	ExtendPeriod uint64
}

func (m *ExtendRequest) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.User)
	return appendUint64(b, 2, m.ExtendPeriod)
}

func (m *ExtendRequest) unmarshalWire(b []byte) error {
	*m = ExtendRequest{}
	d := decoder{b: b}
	for {
		ok, err := d.next()
		if !ok || err != nil {
			return err
		}
		switch d.num {
		case 1:
			m.User, err = d.readString()
		case 2:
			m.ExtendPeriod, err = d.readUint64()
		default:
			err = d.skip()
		}
		if err != nil {
			return err
		}
	}
}

type WithdrawRequest struct {
	User   string
	Amount uint64
}

func (m *WithdrawRequest) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.User)
	return appendUint64(b, 2, m.Amount)
}

func (m *WithdrawRequest) unmarshalWire(b []byte) error {
	*m = WithdrawRequest{}
	d := decoder{b: b}
	for {
		ok, err := d.next()
		if !ok || err != nil {
			return err
		}
		switch d.num {
		case 1:
			m.User, err = d.readString()
		case 2:
			m.Amount, err = d.readUint64()
		default:
			err = d.skip()
		}
		if err != nil {
			return err
		}
	}
}

type GetVaultRequest struct {
	User string
}

func (m *GetVaultRequest) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendString(b, 1, m.User)
}

func (m *GetVaultRequest) unmarshalWire(b []byte) error {
	*m = GetVaultRequest{}
	d := decoder{b: b}
	for {
		ok, err := d.next()
		if !ok || err != nil {
			return err
		}
		switch d.num {
		case 1:
			m.User, err = d.readString()
		default:
			err = d.skip()
		}
		if err != nil {
			return err
		}
	}
}

type GetFeePoolRequest struct{}

func (m *GetFeePoolRequest) appendWire(b []byte) []byte { return b }

func (m *GetFeePoolRequest) unmarshalWire(b []byte) error {
	d := decoder{b: b}
	for {
		ok, err := d.next()
		if !ok || err != nil {
			return err
		}
		if err := d.skip(); err != nil {
			return err
		}
	}
}

type ListEventsRequest struct {
	User  string
	Limit int32
}

func (m *ListEventsRequest) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.User)
	return appendInt32(b, 2, m.Limit)
}

func (m *ListEventsRequest) unmarshalWire(b []byte) error {
	*m = ListEventsRequest{}
	d := decoder{b: b}
	for {
		ok, err := d.next()
		if !ok || err != nil {
			return err
		}
		switch d.num {
		case 1:
			m.User, err = d.readString()
		case 2:
			m.Limit, err = d.readInt32()
		default:
			err = d.skip()
		}
		if err != nil {
			return err
		}
	}
}

// Vault describes a user's record. Balance, Locked and Now are filled in by
// GetVault only.
type Vault struct {
	Address         string
	Owner           string
	Asset           string
	PoolAddress     string
	Wallet          string
	LockPeriod      uint64
	UnlockTimestamp int64
	Balance         uint64
	Locked          bool
	Now             int64
}

func (m *Vault) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.Address)
	b = appendString(b, 2, m.Owner)
	b = appendString(b, 3, m.Asset)
	b = appendString(b, 4, m.PoolAddress)
	b = appendString(b, 5, m.Wallet)
	b = appendUint64(b, 6, m.LockPeriod)
	b = appendInt64(b, 7, m.UnlockTimestamp)
	b = appendUint64(b, 8, m.Balance)
	b = appendBool(b, 9, m.Locked)
	return appendInt64(b, 10, m.Now)
}

func (m *Vault) unmarshalWire(b []byte) error {
	*m = Vault{}
	d := decoder{b: b}
	for {
		ok, err := d.next()
		if !ok || err != nil {
			return err
		}
		switch d.num {
		case 1:
			m.Address, err = d.readString()
		case 2:
			m.Owner, err = d.readString()
		case 3:
			m.Asset, err = d.readString()
		case 4:
			m.PoolAddress, err = d.readString()
		case 5:
			m.Wallet, err = d.readString()
		case 6:
			m.LockPeriod, err = d.readUint64()
		case 7:
			m.UnlockTimestamp, err = d.readInt64()
		case 8:
			m.Balance, err = d.readUint64()
		case 9:
			m.Locked, err = d.readBool()
		case 10:
			m.Now, err = d.readInt64()
		default:
			err = d.skip()
		}
		if err != nil {
			return err
		}
	}
}

type VaultResponse struct {
	Vault *Vault
}

func (m *VaultResponse) appendWire(b []byte) []byte {
	if m == nil || m.Vault == nil {
		return b
	}
	return appendMessage(b, 1, m.Vault.appendWire(nil))
}

func (m *VaultResponse) unmarshalWire(b []byte) error {
	*m = VaultResponse{}
	d := decoder{b: b}
	for {
		ok, err := d.next()
		if !ok || err != nil {
			return err
		}
		switch d.num {
		case 1:
			m.Vault = &Vault{}
			err = d.readMessage(m.Vault)
		default:
			err = d.skip()
		}
		if err != nil {
			return err
		}
	}
}

type FeePoolResponse struct {
	Address     string
	Asset       string
	Initializer string
	Balance     uint64
	CreatedAt   int64
}

func (m *FeePoolResponse) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.Address)
	b = appendString(b, 2, m.Asset)
	b = appendString(b, 3, m.Initializer)
	b = appendUint64(b, 4, m.Balance)
	return appendInt64(b, 5, m.CreatedAt)
}

func (m *FeePoolResponse) unmarshalWire(b []byte) error {
	*m = FeePoolResponse{}
	d := decoder{b: b}
	for {
		ok, err := d.next()
		if !ok || err != nil {
			return err
		}
		switch d.num {
		case 1:
			m.Address, err = d.readString()
		case 2:
			m.Asset, err = d.readString()
		case 3:
			m.Initializer, err = d.readString()
		case 4:
			m.Balance, err = d.readUint64()
		case 5:
			m.CreatedAt, err = d.readInt64()
		default:
			err = d.skip()
		}
		if err != nil {
			return err
		}
	}
}

type WithdrawResponse struct {
	Amount         uint64
	Fee            uint64
	AmountAfterFee uint64
	Locked         bool
	Timestamp      int64
}

func (m *WithdrawResponse) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendUint64(b, 1, m.Amount)
	b = appendUint64(b, 2, m.Fee)
	b = appendUint64(b, 3, m.AmountAfterFee)
	b = appendBool(b, 4, m.Locked)
	return appendInt64(b, 5, m.Timestamp)
}

func (m *WithdrawResponse) unmarshalWire(b []byte) error {
	*m = WithdrawResponse{}
	d := decoder{b: b}
	for {
		ok, err := d.next()
		if !ok || err != nil {
			return err
		}
		switch d.num {
		case 1:
			m.Amount, err = d.readUint64()
		case 2:
			m.Fee, err = d.readUint64()
		case 3:
			m.AmountAfterFee, err = d.readUint64()
		case 4:
			m.Locked, err = d.readBool()
		case 5:
			m.Timestamp, err = d.readInt64()
		default:
			err = d.skip()
		}
		if err != nil {
			return err
		}
	}
}

// Event is one row of a user's history. Payload is the JSON document stored
// with the event.
type Event struct {
	ID        string
	Kind      string
	User      string
	Payload   json.RawMessage
	CreatedAt int64
}

func (m *Event) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.ID)
	b = appendString(b, 2, m.Kind)
	b = appendString(b, 3, m.User)
	b = appendBytes(b, 4, m.Payload)
	return appendInt64(b, 5, m.CreatedAt)
}

func (m *Event) unmarshalWire(b []byte) error {
	*m = Event{}
	d := decoder{b: b}
	for {
		ok, err := d.next()
		if !ok || err != nil {
			return err
		}
		switch d.num {
		case 1:
			m.ID, err = d.readString()
		case 2:
			m.Kind, err = d.readString()
		case 3:
			m.User, err = d.readString()
		case 4:
			m.Payload, err = d.readBytes()
		case 5:
			m.CreatedAt, err = d.readInt64()
		default:
			err = d.skip()
		}
		if err != nil {
			return err
		}
	}
}

type ListEventsResponse struct {
	Events []*Event
}

func (m *ListEventsResponse) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	for _, e := range m.Events {
		b = appendMessage(b, 1, e.appendWire(nil))
	}
	return b
}

func (m *ListEventsResponse) unmarshalWire(b []byte) error {
	*m = ListEventsResponse{}
	d := decoder{b: b}
	for {
		ok, err := d.next()
		if !ok || err != nil {
			return err
		}
		switch d.num {
		case 1:
			e := &Event{}
			if err = d.readMessage(e); err == nil {
				m.Events = append(m.Events, e)
			}
		default:
			err = d.skip()
		}
		if err != nil {
			return err
		}
	}
}
