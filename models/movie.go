// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the domain entities and request/response payloads
// shared by the store, service and transport layers.
package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie is a catalog entry stored in the "movies" collection.
//
// Field names are capitalised both in BSON and JSON because existing
// documents and API clients use that spelling.
type Movie struct {
	// ID is the internal identifier referenced from User.FavoriteMovies.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`

	// Title is the lookup key of GET /movies/{title}. Matching is exact and
	// case-sensitive.
	Title string `bson:"Title" json:"Title" validate:"required"`

	Description string `bson:"Description,omitempty" json:"Description,omitempty"`

	Genre    Genre    `bson:"Genre" json:"Genre"`
	Director Director `bson:"Director" json:"Director"`

	ImagePath string `bson:"ImagePath,omitempty" json:"ImagePath,omitempty"`
	Featured  bool   `bson:"Featured" json:"Featured"`

	// Extra keeps stored keys the catalog does not model (e.g. Actors) so
	// they are returned as-is. It is never read from request bodies.
	Extra bson.M `bson:",inline" json:"-"`
}

// MarshalJSON implements [json.Marshaler]. Keys of Extra are written next to
// the declared fields; a declared field wins on a name clash.
func (m Movie) MarshalJSON() ([]byte, error) {
	type movie Movie
	b, err := json.Marshal(movie(m))
	if err != nil || len(m.Extra) == 0 {
		return b, err
	}

	fields := make(map[string]any, len(m.Extra)+8)
	for k, v := range m.Extra {
		fields[k] = v
	}

	var declared map[string]json.RawMessage
	if err = json.Unmarshal(b, &declared); err != nil {
		return nil, err
	}
	for k, v := range declared {
		fields[k] = v
	}

	return json.Marshal(fields)
}

// CollectionName returns the name of the collection that stores movies.
func (m Movie) CollectionName() string {
	return "movies"
}

// Genre is embedded into every movie and returned on its own by
// GET /genres/{name}.
type Genre struct {
	Name        string `bson:"Name" json:"Name"`
	Description string `bson:"Description,omitempty" json:"Description,omitempty"`
}

// Director is embedded into every movie and returned on its own by
// GET /directors/{name}.
type Director struct {
	Name string `bson:"Name" json:"Name"`
	Bio  string `bson:"Bio,omitempty" json:"Bio,omitempty"`

	// Birth and Death are years. Death is nil for living directors.
	Birth int  `bson:"Birth,omitempty" json:"Birth,omitempty"`
	Death *int `bson:"Death,omitempty" json:"Death,omitempty"`
}
