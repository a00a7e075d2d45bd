package ports

import "context"

type PairLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
