// Package graphio loads location graphs into *core.Graph from outside sources.
//
// Two sources are supported:
//
//   - Graph documents (YAML or JSON, decoded with gopkg.in/yaml.v3):
//
//     name: campus
//     vertices: [Front Gate, Library]
//     edges:
//     - {from: Front Gate, to: Library, weight: 2}
//
//     Each edge is undirected and listed once. Vertices is optional and only
//     needed for isolated locations.
//
//   - A Neo4j database holding (:Location {name})-[:ROAD {weight}]-(:Location)
//     patterns, read with the official Bolt driver.
//
// Both paths end in Build, which validates the data through core.Graph.AddEdge,
// so a loaded graph always satisfies the symmetry invariant.
package graphio
