package graphio

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/katalvlaran/campusnav/core"
)

// ErrMissingURI indicates the Neo4j URI is not provided.
var ErrMissingURI = errors.New("graphio: neo4j URI is required")

// ErrBadRecord indicates a Neo4j row whose columns have unexpected types.
var ErrBadRecord = errors.New("graphio: malformed location record")

// locationsQuery returns one row per (location, road) pair. Isolated locations
// come back once with null neighbor and weight; every road comes back twice,
// once from each end, which Build tolerates.
const locationsQuery = `
MATCH (a:Location)
OPTIONAL MATCH (a)-[r:ROAD]-(b:Location)
RETURN a.name AS from, b.name AS to, r.weight AS weight
ORDER BY from, to`

// Neo4jOptions configures a Neo4j graph source.
type Neo4jOptions struct {
	URI      string
	Database string
	Username string
	Password string
}

// Record is one row returned by the graph engine, keyed by column name.
type Record map[string]any

// Reader runs a read-only Cypher query.
type Reader interface {
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) ([]Record, error)
}

// Neo4jSource loads location graphs over Bolt.
type Neo4jSource struct {
	driver   neo4j.DriverWithContext
	database string
}

// OpenNeo4j connects to Neo4j and verifies connectivity.
func OpenNeo4j(ctx context.Context, opts Neo4jOptions) (*Neo4jSource, error) {
	if opts.URI == "" {
		return nil, ErrMissingURI
	}

	auth := neo4j.NoAuth()
	if opts.Username != "" {
		auth = neo4j.BasicAuth(opts.Username, opts.Password, "")
	}

	driver, err := neo4j.NewDriverWithContext(opts.URI, auth)
	if err != nil {
		return nil, fmt.Errorf("graphio: create neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("graphio: verify neo4j connectivity: %w", err)
	}

	return &Neo4jSource{driver: driver, database: opts.Database}, nil
}

// ExecuteRead runs cypher in a read session and collects every record.
func (s *Neo4jSource) ExecuteRead(ctx context.Context, cypher string, params map[string]any) ([]Record, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: s.database,
		AccessMode:   neo4j.AccessModeRead,
	})
	defer session.Close(ctx)

	res, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}

	var records []Record
	for res.Next(ctx) {
		rec := res.Record()
		record := make(Record, len(rec.Keys))
		for _, key := range rec.Keys {
			value, _ := rec.Get(key)
			record[key] = value
		}
		records = append(records, record)
	}
	if err := res.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Load reads every location and road and builds the graph.
func (s *Neo4jSource) Load(ctx context.Context) (*core.Graph, error) {
	return LoadFrom(ctx, s)
}

// Close releases the driver.
func (s *Neo4jSource) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// LoadFrom runs the location query on r and builds the graph from its rows.
func LoadFrom(ctx context.Context, r Reader) (*core.Graph, error) {
	records, err := r.ExecuteRead(ctx, locationsQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("graphio: query locations: %w", err)
	}
	doc, err := documentFromRecords(records)
	if err != nil {
		return nil, err
	}

	return Build(doc)
}

// documentFromRecords maps (from, to, weight) rows onto a Document.
// Bolt returns integer properties as int64 and floats as float64.
func documentFromRecords(records []Record) (Document, error) {
	doc := Document{Name: "neo4j"}
	for i, rec := range records {
		from, ok := rec["from"].(string)
		if !ok || from == "" {
			return Document{}, fmt.Errorf("%w: row %d has no location name", ErrBadRecord, i)
		}
		if rec["to"] == nil {
			doc.Vertices = append(doc.Vertices, from)
			continue
		}
		to, ok := rec["to"].(string)
		if !ok {
			return Document{}, fmt.Errorf("%w: row %d neighbor is %T", ErrBadRecord, i, rec["to"])
		}
		var w float64
		switch v := rec["weight"].(type) {
		case int64:
			w = float64(v)
		case float64:
			w = v
		case nil:
			return Document{}, fmt.Errorf("%w: row %d %s—%s", ErrMissingWeight, i, from, to)
		default:
			return Document{}, fmt.Errorf("%w: row %d weight is %T", ErrBadRecord, i, rec["weight"])
		}
		doc.Edges = append(doc.Edges, EdgeSpec{From: from, To: to, Weight: WeightOf(w)})
	}

	return doc, nil
}
