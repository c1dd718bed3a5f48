// Command inspect dumps the content of a Badger store in a readable table.
// It opens the database read-only and bypasses the lock guard, so it can run
// against the store of a live server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/vmihailenco/msgpack/v5"

	"switchboard/domain"
)

func main() {
	dbPath := flag.String("db", "/tmp/switchboard/badger", "Path to badger DB")
	prefix := flag.String("prefix", "", "Prefix to scan (empty scans everything)")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	header := color.New(color.BgBlack, color.FgGreen).
		Render(fmt.Sprintf(" switchboard store — %s ", *dbPath))
	fmt.Println(header)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Timestamp", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			err := item.Value(func(v []byte) error {
				entityType, ts, detail := describe(key, v)
				table.Append([]string{key, entityType, ts, detail})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

// describe decodes a value according to its key prefix. Unknown or purely
// structural keys (membership marks, reverse indexes) are shown as-is.
func describe(key string, val []byte) (string, string, string) {
	switch {
	case strings.HasPrefix(key, "user:"):
		var u domain.User
		if err := msgpack.Unmarshal(val, &u); err == nil {
			return "USER", u.CreatedAt.Format(time.RFC822), u.Username
		}
	case strings.HasPrefix(key, "conv:"):
		var c domain.Conversation
		if err := msgpack.Unmarshal(val, &c); err == nil {
			title := "(untitled)"
			if c.Title != nil {
				title = *c.Title
			}
			return "CONV", c.UpdatedAt.Format(time.RFC822), title
		}
	case strings.HasPrefix(key, "msg:"):
		var m domain.ChatMessage
		if err := msgpack.Unmarshal(val, &m); err == nil {
			return "MESSAGE", m.CreatedAt.Format(time.RFC822), truncate(m.Content, 60)
		}
	case strings.HasPrefix(key, "post:"):
		var p domain.Post
		if err := msgpack.Unmarshal(val, &p); err == nil {
			return "POST", p.CreatedAt.Format(time.RFC822), truncate(p.Content, 60)
		}
	case strings.HasPrefix(key, "msgmeta:"):
		var c domain.Categorization
		if err := msgpack.Unmarshal(val, &c); err == nil {
			return "CATEGORY", "", fmt.Sprintf("%s — %s", c.Category, truncate(c.Reasoning, 50))
		}
	case strings.HasPrefix(key, "delegation:"):
		var d domain.Delegation
		if err := msgpack.Unmarshal(val, &d); err == nil {
			return "DELEGATION", d.CreatedAt.Format(time.RFC822),
				fmt.Sprintf("post=%t message=%t deletePosts=%t", d.CanPost, d.CanMessage, d.CanDeletePosts)
		}
	case strings.HasPrefix(key, "session:"):
		var s domain.Session
		if err := msgpack.Unmarshal(val, &s); err == nil {
			return "SESSION", s.Expires.Format(time.RFC822), "user " + s.UserID.String()
		}
	}
	return "RAW", "", fmt.Sprintf("%d bytes", len(val))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
