package linear

/*
	This package implements a string frequency table on top of a closed
	hashing (open addressing) hashtable using plain linear probing for
	resolving any hash collisions. More information about the technique
	can be found in the links provided below:
	01) https://en.wikipedia.org/wiki/Open_addressing
	02) https://en.wikipedia.org/wiki/Linear_probing
	03) http://thomas-niemann.com/sorts/hashtables.html
	The basic principal is:
	-----------------------
	1) Calculate the hash value and initial index of the key to be inserted
	2) Search the position in the array linearly, wrapping at the end
	3) A repeated key has its occurrence count bumped in place, a new key
	   claims the first empty or deleted slot on its probe path
	4) Deleting the last occurrence of a key leaves a tombstone in its
	   slot, so probe sequences passing through it stay unbroken
	5) Tombstones still count as occupied cells, and once occupied cells
	   exceed half the capacity the table grows to the first prime at
	   least twice the old capacity plus one and rebuilds itself
	The table also keeps a running tally of pairwise hash collisions
	between distinct live keys, maintained on every insert and delete.
*/
