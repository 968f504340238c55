package zotero

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// run with -race
func TestParallelUse(t *testing.T) {
	locales := []string{"fr", "de-CH", "ja", "", "en-GB", "fr_FR", "xx-unsupported"}
	custom := DefaultLocalizer().With(&LocaleTable{Locale: "it-IT", ItemTypes: map[string]string{"book": "Libro"}})

	contents := map[ItemType]Content{}
	for _, it := range ItemTypes() {
		contents[it] = fillContent(t, it)
	}

	wg := sync.WaitGroup{}
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				it := ItemTypes()[(g+i)%len(ItemTypes())]
				locale := locales[(g*i)%len(locales)]
				assert.NotEmpty(t, DisplayName(it, locale))
				assert.NotEmpty(t, FieldLabel("title", locale))
				assert.Equal(t, "Libro", custom.DisplayName(ItemType_Book, "it"))

				item := &Item{
					Key:     CreateKey(),
					Version: uint64(i),
					Library: Library{Type: "user", ID: uint64(g)},
					Content: contents[it],
				}
				data := Encode(item)
				decoded, err := Decode(data)
				if !assert.NoError(t, err) {
					return
				}
				assert.Equal(t, item, decoded, fmt.Sprintf("goroutine %v, round %v", g, i))
			}
		}(g)
	}
	wg.Wait()
}
