// Package protoconv converts documents to and from the protobuf Struct
// well-known type so they can travel inside proto envelopes without a
// generated schema. Conversion goes through the canonical form, so a
// document survives the round trip with its content hash intact.
package protoconv
