package refresolver

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/erraggy/oastranslator/jsonpointer"
	"github.com/erraggy/oastranslator/oaserrors"
	"github.com/erraggy/oastranslator/orderedmap"
	"github.com/erraggy/oastranslator/specdoc"
	"github.com/erraggy/oastranslator/typedcache"
)

// Resolver resolves $ref URIs against a base document, fetching external
// documents as needed and caching both the fetched documents and the
// typed values decoded out of them.
type Resolver struct {
	Base   *specdoc.ParsedSpec
	Cache  *typedcache.Cache
	Client *http.Client
}

// New creates a Resolver rooted at base, using cache for memoization.
func New(base *specdoc.ParsedSpec, cache *typedcache.Cache) *Resolver {
	return &Resolver{
		Base:   base,
		Cache:  cache,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Resolve resolves uri (a $ref value, e.g. "#/components/schemas/Pet" or
// "other.yaml#/Pet" or "https://example.com/api.yaml#/Pet") to a typed
// value, decoding the target node with decode. The (uri, T) pair is
// memoized in the Resolver's cache, so decode runs at most once per
// distinct uri/type combination for the lifetime of the current command.
func Resolve[T any](r *Resolver, uri string, decode func(m *orderedmap.Map[any]) (*T, error)) (*T, error) {
	return typedcache.GetOrInsert(r.Cache, uri, func() (*T, error) {
		node, err := r.locate(uri)
		if err != nil {
			return nil, &oaserrors.ReferenceError{URI: uri, Message: err.Error(), Cause: err}
		}
		m, ok := node.(*orderedmap.Map[any])
		if !ok {
			return nil, &oaserrors.ReferenceError{URI: uri, Message: "reference target is not an object"}
		}
		val, err := decode(m)
		if err != nil {
			return nil, &oaserrors.ReferenceError{URI: uri, Message: "decoding reference target", Cause: err}
		}
		return val, nil
	})
}

// locate splits uri into a document part and a JSON-pointer fragment,
// loads the right document (the base document for a bare fragment, or an
// external file/HTTP document otherwise), and navigates the fragment.
func (r *Resolver) locate(uri string) (any, error) {
	docPart, fragment := splitRef(uri)

	var root any
	if docPart == "" {
		root = r.Base.Root
	} else {
		doc, err := r.resolveDocument(docPart)
		if err != nil {
			return nil, err
		}
		root = doc.Root
	}

	return jsonpointer.Navigate(root, fragment)
}

func splitRef(uri string) (docPart, fragment string) {
	idx := strings.Index(uri, "#")
	if idx < 0 {
		return uri, ""
	}
	return uri[:idx], uri[idx:]
}

// resolveDocument fetches and parses the document named by docPart,
// memoizing the parsed result under a cache key namespaced away from
// ordinary $ref keys so a document and a same-named fragment can never
// collide.
func (r *Resolver) resolveDocument(docPart string) (*specdoc.ParsedSpec, error) {
	return typedcache.GetOrInsert(r.Cache, "document:"+docPart, func() (*specdoc.ParsedSpec, error) {
		if strings.HasPrefix(docPart, "http://") || strings.HasPrefix(docPart, "https://") {
			return r.fetchHTTP(docPart)
		}
		return r.fetchFile(docPart)
	})
}

func (r *Resolver) fetchFile(relPath string) (*specdoc.ParsedSpec, error) {
	baseDir := filepath.Dir(r.Base.Path)
	path := filepath.Join(baseDir, relPath)
	return specdoc.Load(path)
}

func (r *Resolver) fetchHTTP(url string) (*specdoc.ParsedSpec, error) {
	resp, err := r.Client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return specdoc.Parse(url, data)
}
