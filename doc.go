// Package rocksling turns an institutional investor's private-fund commitments
// into a RockSling portfolio input table.
//
// The pipeline is a single batch pass:
//   - Commitments: records fetched from the Preqin investor commitment API
//     (see package preqin).
//   - Reference: the bulk Preqin fund performance export, indexed by fund id
//     (see package xlsx for loading it).
//   - Merge: commitments are left-joined onto the reference, missing
//     commitment amounts are defaulted, capital-account figures (paid-in,
//     distributed, NAV, unfunded, total exposure) are derived, and positions
//     with any missing value are dropped.
//   - Output: surviving positions are projected into the fixed RockSling
//     column layout, with no empty (null) cell left unresolved.
//   - Summary: read-only aggregates for a human readable report.
//
// Everything is held in memory for the duration of the run; nothing is
// persisted besides the output workbook written by the command line tool.
package rocksling
