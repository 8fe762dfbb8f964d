// Package rijndael implements the AES block cipher (FIPS-197) from primitive operations:
// GF(2^8) arithmetic, the substitution box, the key schedule and the forward and inverse
// round pipelines over a 4x4 byte state.
//
// Blocks are processed independently (electronic-codebook style). There is no IV, no
// chaining, no authentication and no protection against timing side channels; the final
// short block is right-padded with zero bytes and the padding is never stripped.
package rijndael
