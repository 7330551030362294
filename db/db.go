package db

import (
	"net"
	"sort"
	"time"

	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

var ErrCutlistNotFound = errors.New("cutlist not found")

// Repo is the storage surface the service depends on.
type Repo interface {
	SaveCutlist(*Cutlist) error
	GetCutlist(name string) (*Cutlist, error)
	DeleteCutlist(name string) error
	ListCutlists() ([]string, error)
	Ping() error
}

type Options struct {
	Addr string
	DB   int
}

func NewClient(opt *Options) (*Client, error) {
	if opt == nil {
		opt = &Options{}
	}
	if opt.Addr == "" {
		opt.Addr = "localhost:6379"
	}
	_, _, err := net.SplitHostPort(opt.Addr)
	if err != nil {
		opt.Addr = net.JoinHostPort(opt.Addr, "6379")
	}
	c := &Client{
		rc: redis.NewClient(&redis.Options{
			Addr:     opt.Addr,
			DB:       opt.DB,
			Password: "",
		}),
	}
	return c, nil
}

type Client struct {
	rc *redis.Client
}

const cutlistSetKey = "cutlists"

func cutlistKey(name string) string {
	return "cutlist:" + name
}

// SaveCutlist stores the cutlist under its name and indexes the name,
// replacing any previous version.
func (c *Client) SaveCutlist(cl *Cutlist) error {
	if err := cl.Validate(); err != nil {
		return err
	}
	data, err := cl.marshal()
	if err != nil {
		return err
	}
	key := cutlistKey(cl.Name)
	return c.rc.Watch(func(tx *redis.Tx) error {
		if err := tx.Set(key, data, exp).Err(); err != nil {
			return err
		}
		return tx.SAdd(cutlistSetKey, cl.Name).Err()
	}, key)
}

// GetCutlist loads a cutlist by name.
func (c *Client) GetCutlist(name string) (*Cutlist, error) {
	val, err := c.rc.Get(cutlistKey(name)).Result()
	if err == redis.Nil {
		return nil, ErrCutlistNotFound
	} else if err != nil {
		return nil, err
	}
	return unmarshalCutlist([]byte(val))
}

// DeleteCutlist removes a cutlist and drops its name from the index.
func (c *Client) DeleteCutlist(name string) error {
	n, err := c.rc.Del(cutlistKey(name)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCutlistNotFound
	}
	c.rc.SRem(cutlistSetKey, name)
	return nil
}

// ListCutlists returns the stored cutlist names in lexical order.
func (c *Client) ListCutlists() ([]string, error) {
	names, err := c.rc.SMembers(cutlistSetKey).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Ping reports whether the store is reachable.
func (c *Client) Ping() error {
	return c.rc.Ping().Err()
}

var exp = 24 * time.Hour * 365 * 10
