// Package eblp parses EblanPlug plugin documents, validates them and serializes them into the .eblp format.
package eblp
