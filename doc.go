/*
Package schash provides a generic separate-chaining hash table.

Table is a set-like container: elements are located by their own hash code
and compared by their own equality, there is no separate key. Each slot of
the bucket array holds a chain of the elements that hashed to it, and the
bucket count is always a prime number.

Basic usage:

	import "github.com/theflywheel/schash"

	// A table with the default 101 buckets
	t := schash.New[schash.StringKey]()

	t.Insert("alpha")
	t.Insert("beta")
	t.Insert("alpha") // already present, no-op

	if t.Contains("beta") {
		fmt.Println("found beta")
	}

	t.Remove("alpha")
	fmt.Println(t.Len()) // 1

Element contract:

Any type used as an element must implement Hasher. Hash must be
deterministic and Equal must be an equivalence relation, and two elements
that are Equal must return the same Hash. The table does not check this;
breaking it makes Contains and Remove miss elements that are stored.

Features:

  - Idempotent Insert: inserting an element equal to a stored one does nothing
  - Automatic growth when the element count exceeds the bucket count
  - Bucket counts are primes, growing to the next prime above twice the old count
  - Removal keeps the relative order of the remaining chain
  - Negative hash codes are folded into range

Implementation Details:

A bucket index is Hash() modulo the bucket count, shifted up by the bucket
count when the remainder is negative. Growth snapshots the old buckets,
allocates nextPrime(2*old+1) empty buckets and reinserts every element through
Insert in bucket order then chain order.

Table is not safe for concurrent use. Callers that share a table between
goroutines must serialise access themselves.
*/
package schash
