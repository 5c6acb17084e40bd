package deal

import "errors"

var (
	ErrDealNotFound     = errors.New("deal not found")
	ErrDuplicateAddress = errors.New("deal with this address already exists")
	ErrDuplicateID      = errors.New("deal id already exists")
	ErrInvalidDeal      = errors.New("invalid deal")
	ErrEmptyPatch       = errors.New("nothing to update")
)
